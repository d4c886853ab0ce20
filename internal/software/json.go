package software

import (
	"encoding/json"

	"github.com/ImSingee/go-ex/ee"

	"github.com/aboe026/software-update-checker-sub000/internal/executable"
)

type jsonExecutable struct {
	Command   string `json:"command,omitempty"`
	Directory string `json:"directory,omitempty"`
	Regex     string `json:"regex,omitempty"`
}

type jsonDefinition struct {
	Name           string          `json:"name"`
	Shell          string          `json:"shell,omitempty"`
	Executable     *jsonExecutable `json:"executable"`
	Args           string          `json:"args,omitempty"`
	InstalledRegex string          `json:"installedRegex"`
	URL            string          `json:"url"`
	LatestRegex    string          `json:"latestRegex"`
}

func (d Definition) MarshalJSON() ([]byte, error) {
	j := jsonDefinition{
		Name:           d.Name,
		Shell:          d.Shell,
		Args:           d.Args,
		InstalledRegex: d.InstalledRegex,
		URL:            d.URL,
		LatestRegex:    d.LatestRegex,
	}

	switch e := d.Executable.(type) {
	case executable.Static:
		j.Executable = &jsonExecutable{Command: e.Command}
	case *executable.Static:
		j.Executable = &jsonExecutable{Command: e.Command}
	case executable.Dynamic:
		j.Executable = &jsonExecutable{Directory: e.Directory, Regex: e.Regex}
	case *executable.Dynamic:
		j.Executable = &jsonExecutable{Directory: e.Directory, Regex: e.Regex}
	}

	return json.Marshal(j)
}

func (d *Definition) UnmarshalJSON(data []byte) error {
	var j jsonDefinition
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}

	exe, err := j.Executable.decode()
	if err != nil {
		return ee.Wrapf(err, "invalid software %q", j.Name)
	}

	*d = Definition{
		Name:           j.Name,
		Shell:          j.Shell,
		Executable:     exe,
		Args:           j.Args,
		InstalledRegex: j.InstalledRegex,
		URL:            j.URL,
		LatestRegex:    j.LatestRegex,
	}

	return d.Validate()
}

func (j *jsonExecutable) decode() (executable.Executable, error) {
	if j == nil {
		return nil, ErrNoExecutable
	}

	static := j.Command != ""
	dynamic := j.Directory != "" || j.Regex != ""

	switch {
	case static && dynamic:
		return nil, ErrAmbiguousExec
	case static:
		return executable.Static{Command: j.Command}, nil
	case dynamic:
		return executable.Dynamic{Directory: j.Directory, Regex: j.Regex}, nil
	default:
		return nil, ErrNoExecutable
	}
}
