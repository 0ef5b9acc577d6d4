// @title HackHub API
// @version 1.0
// @description Hackathon and event management API: event creation, applications, teams and project submissions.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	_ "hackhub/docs"

	"hackhub/cmd/server/cmd"
)

func main() {
	cmd.Execute()
}
