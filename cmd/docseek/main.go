// cmd/docseek/main.go
package main

func main() {
	Execute()
}
