// Command circuitlab evaluates lesson circuits from the terminal and serves
// them over HTTP.
package main

func main() {
	Execute()
}
