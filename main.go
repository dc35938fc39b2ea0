/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/coursehound/course-api/cmd"

// @title           Course Finder API
// @version         1.0.0
// @description     A course discovery service backed by an external recommendation engine
// @contact.name    API Support
// @contact.url     https://github.com/coursehound/course-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
