// Command treectl inspects and drives the tree state from the command line,
// against the same config and store the server uses.
package main

func main() {
	Execute()
}
