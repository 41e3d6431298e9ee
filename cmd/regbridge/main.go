// The regbridge command runs bus-to-register-backend simulations from the
// command line.
package main

func main() {
	Execute()
}
