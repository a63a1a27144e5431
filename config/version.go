package config

import (
	"fmt"
)

var (
	version = "dev"
	AppName = "acmednsCli"
	intro   = "An acme-dns client that manages accounts and DNS-01 challenge records."
	date    = "unknown"
)

func ShowVersion() {
	fmt.Printf("%s %s, built at %s\n%s\n", AppName, version, date, intro)
}
