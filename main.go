package main

import "github.com/mindwell-care/patients/api"

func main() {
	api.MainLoop()
}
