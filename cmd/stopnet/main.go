// Command stopnet inspects and simulates transit networks built on the
// stopnet packages. It loads networks from the text format understood by the
// network package and answers routing queries against the synchronised
// routing tables.
package main

func main() {
	Execute()
}
