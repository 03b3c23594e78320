package linklist_test

import (
	"fmt"

	"github.com/erraggy/navtools/linklist"
)

func ExampleFlatList() {
	paths := []string{"/about.html", "/contact.html", "/news/"}
	fmt.Println(linklist.FlatList(paths, linklist.Options{CurrentURL: "/contact.html"}))
	// Output:
	// <ul><li><a href="/about.html">About</a></li>
	// <li><em>Contact</em></li>
	// <li><a href="/news/">News</a></li>
	// </ul>
}

func ExampleBreadcrumb() {
	fmt.Println(linklist.Breadcrumb("/news/2026/launch.html", linklist.Options{}))
	// Output:
	// <p><a href="/">Home</a> &gt; <a href="/news/">News</a> &gt; <a href="/news/2026/">2026</a> &gt; <em>Launch</em></p>
}

func ExampleFullTree() {
	paths := []string{"/news/launch.html", "/about.html"}
	fmt.Println(linklist.FullTree(paths, linklist.Options{StartDepth: 1}))
	// Output:
	// <ul><li><a href="/about.html">About</a></li>
	// <li><a href="/news/">News</a>
	// <ul><li><a href="/news/launch.html">Launch</a></li>
	// </ul></li>
	// </ul>
}

func ExampleNavBar() {
	paths := []string{"/docs/install.html", "/docs/usage.html", "/about.html"}
	fmt.Println(linklist.NavBar(paths, linklist.Options{CurrentURL: "/docs/install.html"}))
	// Output:
	// <ul><li><a href="/about.html">About</a></li>
	// <li><strong><a href="/docs/">Docs</a></strong></li>
	// </ul>
	// <ul><li>[Docs]</li>
	// <li><em>Install</em></li>
	// <li><a href="/docs/usage.html">Usage</a></li>
	// </ul>
}
