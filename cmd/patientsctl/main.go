package main

import "github.com/mindwell-care/patients/cmd/patientsctl/command"

func main() {
	command.Execute()
}
