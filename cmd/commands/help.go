package commands

import "fmt"

const help = `hotelmedia: admin media manager for the hotel site.

usage:
  hotelmedia run <config.yml>   start the HTTP server
  hotelmedia version            print the version
  hotelmedia help               print this message

secrets are read from the environment (or .env outside prod):
  MINIO_ROOT_USER, MINIO_ROOT_PASSWORD, DATABASE_URI, BROKER_URI, ADMIN_JWT_SECRET
`

func HandleHelp(_ []string) {
	fmt.Print(help) //nolint
}
