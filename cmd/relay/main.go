package main

import (
	// RELAY_TIMEZONE must resolve on hosts without zoneinfo
	_ "time/tzdata"
)

func main() {
	CustomizeHelp(rootCmd)
	Execute()
}
