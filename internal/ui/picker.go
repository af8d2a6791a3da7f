package ui

import (
	"github.com/charmbracelet/huh"
)

// PickFiles lets the user narrow the session to a subset of the
// discovered conflicted files before the resolver starts.
func PickFiles(files []string) ([]string, error) {
	var selected []string
	var options []huh.Option[string]

	for _, file := range files {
		options = append(options, huh.NewOption(file, file))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select files to resolve:").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}
	return selected, nil
}
