package main

import "github.com/df07/go-weekend-raytracer/cmd"

func main() {
	cmd.Execute()
}
