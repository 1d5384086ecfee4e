/*
Copyright 2025 Teller Ledger Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/teller-ledger/teller"
	"github.com/teller-ledger/teller/config"
)

// Teller represents the CLI application, encapsulating the root Cobra command.
type Teller struct {
	cmd *cobra.Command
}

// tellerInstance holds the Teller service and its configuration for use by
// the subcommands.
type tellerInstance struct {
	teller *teller.Teller
	cnf    *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun sets up the configuration and initializes the Teller service before
// running any command.
func preRun(app *tellerInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		app.teller = teller.NewTeller()
		app.cnf = cnf

		return nil
	}
}

// NewCLI creates the command-line interface for the Teller application.
func NewCLI() *Teller {
	var configFile string
	b := &tellerInstance{}

	var rootCmd = &cobra.Command{
		Use:   "teller",
		Short: "In-memory bank ledger",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./teller.json", "Configuration file for the teller server")

	rootCmd.PersistentPreRunE = preRun(b, &configFile)

	rootCmd.AddCommand(serverCommands(b))

	return &Teller{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Teller) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
