package prompt

import (
	"github.com/spektr-org/bikeshare/trips"
)

const (
	greeting = "Hello! Let's explore some US bikeshare data!"

	askCity     = "Would you like to see data for Chicago, New York City, or Washington?\n"
	invalidCity = "\nThat was not a valid input. Please type the city exactly as it appears above."

	introMonth   = "\nNow, which month would you like to see data for?"
	askMonth     = "Enter the full name of the month (e.g. \"January\") or enter \"all.\"\n"
	invalidMonth = "\nThat was not a valid input. Please spell out the entire month or enter \"all.\""

	introDay   = "\nFinally, which day of the week would you like to see data for?"
	askDay     = "Enter the full day of week (e.g. \"Monday\") or enter \"all.\"\n"
	invalidDay = "\nThat was not a valid input. Please spell out the entire day of week or enter \"all.\""
)

// CollectSelection greets the user and asks for a city, month and day.
// Answers are matched case-insensitively after trimming.
func CollectSelection(p *Prompter, reg *trips.Registry) (trips.Selection, error) {
	p.Say(greeting)

	city, err := p.Choose(askCity, invalidCity, reg.ParseCity)
	if err != nil {
		return trips.Selection{}, err
	}

	p.Say(introMonth)
	month, err := p.Choose(askMonth, invalidMonth, trips.ParseMonth)
	if err != nil {
		return trips.Selection{}, err
	}

	p.Say(introDay)
	day, err := p.Choose(askDay, invalidDay, trips.ParseDay)
	if err != nil {
		return trips.Selection{}, err
	}

	p.PrintRule()
	return trips.Selection{City: city, Month: month, Day: day}, nil
}
