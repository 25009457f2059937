package main

import "github.com/redactyl/headerlint/cmd/headerlint"

func main() { headerlint.Execute() }
