package main

import (
	"os"

	"github.com/stationhealth/onboarding-api/log"
	"github.com/stationhealth/onboarding-api/onboarding/onboardingcli"
)

func main() {
	app := onboardingcli.GetApp()
	if err := app.Run(os.Args); err != nil {
		log.API.Fatal(err)
	}
}
