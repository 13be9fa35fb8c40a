package main

import "payslipgen/internal/app/server"

func main() {
	server.Run()
}
