package main

import "log"

func main() {
	dbg := newDebugSession()
	if err := RunGUI(dbg); err != nil {
		log.Fatal(err)
	}
}
