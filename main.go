package main

import "github.com/saadjs/coach-cli/cmd/coach"

func main() {
	coach.Execute()
}
