/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/rickenator/dna-codec/cmd/dnac/cmd"
)

func main() {
	cmd.Execute()
}
