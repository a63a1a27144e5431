package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thank243/acmednsCli/client"
	"github.com/thank243/acmednsCli/common/cname"
	"github.com/thank243/acmednsCli/common/cname/cloudflare"
	"github.com/thank243/acmednsCli/common/cname/route53"
	"github.com/thank243/acmednsCli/common/doh"
	"github.com/thank243/acmednsCli/config"
	"github.com/thank243/acmednsCli/controller"
	"github.com/thank243/acmednsCli/helper"
)

var (
	apiBase string

	registerAllowFrom []string
	updateTxt         string
	verifyDomain      string
	verifyNameserver  string
	cnameProvider     string
	cnameDomain       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "acme-dns account and DNS-01 challenge record management",
	Long: `acmednsCli manages accounts on a joohoi/acme-dns server.

Register once, delegate _acme-challenge.<yourdomain> via CNAME to the issued
fulldomain, then publish challenge tokens with "update" whenever your ACME
client runs a DNS-01 challenge.

The update, verify and cname commands read the account from the
ACME_DNS_USERNAME, ACME_DNS_PASSWORD, ACME_DNS_SUBDOMAIN, ACME_DNS_FULLDOMAIN
and optional ACME_DNS_ALLOWFROM environment variables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBase, "api-base", "", "acme-dns API base URL (default $ACME_DNS_API_BASE)")

	registerCmd.Flags().StringSliceVar(&registerAllowFrom, "allowfrom", nil, "CIDR ranges allowed to call /update (server default policy when omitted)")

	updateCmd.Flags().StringVar(&updateTxt, "txt", "", "TXT value to publish (the DNS-01 challenge token)")
	_ = updateCmd.MarkFlagRequired("txt")

	verifyCmd.Flags().StringVar(&verifyDomain, "domain", "", "domain whose _acme-challenge delegation to verify")
	_ = verifyCmd.MarkFlagRequired("domain")
	verifyCmd.Flags().StringVar(&verifyNameserver, "nameserver", "", "DoH endpoint to query instead of the system resolver (e.g. https://1.1.1.1/dns-query)")

	cnameCmd.Flags().StringVar(&cnameProvider, "provider", "", "DNS hosting provider: cloudflare or route53")
	_ = cnameCmd.MarkFlagRequired("provider")
	cnameCmd.Flags().StringVar(&cnameDomain, "domain", "", "domain to delegate")
	_ = cnameCmd.MarkFlagRequired("domain")

	rootCmd.AddCommand(registerCmd, updateCmd, healthCmd, verifyCmd, cnameCmd, monitorCmd, versionCmd)
}

func newClient() (*client.Client, error) {
	if apiBase != "" {
		return client.New(apiBase)
	}
	return client.FromEnv()
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new acme-dns account and print its credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		creds, err := c.Register(registerAllowFrom)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(creds, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Publish a TXT value for the account's subdomain",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		creds, err := client.CredentialsFromEnv()
		if err != nil {
			return err
		}

		if err := c.UpdateTXT(creds, updateTxt); err != nil {
			return err
		}
		fmt.Printf("updated TXT record for %s\n", creds.Fulldomain)
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the acme-dns endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		if err := c.Health(); err != nil {
			return err
		}
		fmt.Println("acme-dns endpoint is healthy")
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the _acme-challenge CNAME delegation of a domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := client.CredentialsFromEnv()
		if err != nil {
			return err
		}

		record := "_acme-challenge." + verifyDomain
		var target string
		if verifyNameserver != "" {
			if records := doh.New(verifyNameserver).Lookup(record, "CNAME"); len(records) > 0 {
				target = strings.TrimSuffix(records[0], ".")
			}
		} else {
			target = helper.LookupCNAME(record)
		}

		if target != creds.Fulldomain {
			return fmt.Errorf("%s resolves to %q, want CNAME to %q", record, target, creds.Fulldomain)
		}
		fmt.Printf("%s is delegated to %s\n", record, creds.Fulldomain)
		return nil
	},
}

var cnameCmd = &cobra.Command{
	Use:   "cname",
	Short: "Create or update the _acme-challenge CNAME at a DNS hosting provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := client.CredentialsFromEnv()
		if err != nil {
			return err
		}

		var provider cname.Provider
		switch cnameProvider {
		case "cloudflare":
			provider, err = cloudflare.New(envConfig("CLOUDFLARE_API_KEY", "CLOUDFLARE_EMAIL"))
		case "route53":
			provider, err = route53.New(envConfig("AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"))
		default:
			return fmt.Errorf("unknown CNAME provider %q", cnameProvider)
		}
		if err != nil {
			return err
		}

		record := "_acme-challenge." + cnameDomain
		if err := provider.EnsureCNAME(record, creds.Fulldomain); err != nil {
			return err
		}
		fmt.Printf("%s now points at %s\n", record, creds.Fulldomain)
		return nil
	},
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch acme-dns endpoints from config.yml and notify on health changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.ShowVersion()

		// init config
		getConfig := config.GetConfig()
		c := new(config.Config)
		if err := getConfig.Unmarshal(c); err != nil {
			return err
		}

		// start service
		s := controller.New(c)
		s.Start()

		// hot reload configure
		lastTime := time.Now()
		getConfig.OnConfigChange(func(e fsnotify.Event) {
			if time.Now().After(lastTime.Add(time.Second * 3)) {
				log.Println("Config file changed:", e.Name)
				if err := getConfig.Unmarshal(c); err != nil {
					log.Panic(err)
				}
				// release server resource
				s.Close()
				s = nil

				// create server
				s = controller.New(c)
				s.Start()
			}
			lastTime = time.Now()
		})
		getConfig.WatchConfig()

		// Running backend
		osSignals := make(chan os.Signal, 1)
		signal.Notify(osSignals, os.Interrupt, syscall.SIGTERM)
		<-osSignals

		s.Close()
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		config.ShowVersion()
	},
}

// envConfig lowercases the variable names, provider constructors key their
// config maps that way.
func envConfig(names ...string) map[string]string {
	c := make(map[string]string)
	for _, name := range names {
		c[strings.ToLower(name)] = os.Getenv(name)
	}
	return c
}
