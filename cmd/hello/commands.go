package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-hello/internal/clients"
	"github.com/bionicotaku/lingo-services-hello/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultHelloWorldURL = "http://localhost:8080"

func newGreetCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Print the locally selected greeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			greeter := services.NewFrenchGreeter()
			if text != "" {
				greeter = services.StaticGreeter(text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), services.NewGreetingService(greeter).SayHelloWorld())
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "greet with a fixed text instead of the French greeting")
	return cmd
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Print the sum of two integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			b, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), services.Add(a, b))
			return nil
		},
	}
}

func newFetchCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the greeting served at the root of the remote service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			baseURL := strings.TrimSpace(v.GetString("url"))
			if baseURL == "" {
				baseURL = defaultHelloWorldURL
			}
			logger := log.NewStdLogger(os.Stderr)
			client, err := clients.NewHelloWorldClient(baseURL,
				clients.WithTimeout(v.GetDuration("timeout")),
				clients.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			defer client.Close()

			greeting, err := client.FetchHello(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch greeting from %s: %w", baseURL, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), greeting)
			return nil
		},
	}
	cmd.Flags().String("url", "", "base URL of the greeting service (env HELLO_WORLD_URL)")
	cmd.Flags().Duration("timeout", 2*time.Second, "request timeout")

	v.SetDefault("url", defaultHelloWorldURL)
	_ = v.BindPFlag("url", cmd.Flags().Lookup("url"))
	_ = v.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	_ = v.BindEnv("url", "HELLO_WORLD_URL")
	return cmd
}
