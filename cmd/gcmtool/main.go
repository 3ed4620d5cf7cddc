// Command gcmtool is a thin demonstration CLI over package aesgcm512.
// It exists so the library can be driven from a shell; it carries no
// cryptographic logic of its own.
package main

func main() {
	Execute()
}
