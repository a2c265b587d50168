// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ManifestReadFailedId
	RegistryUnreachableId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the crateaudit configuration file.

## Configuration file locations:
- Linux: ~/.config/crateaudit/config.cue
- macOS: ~/Library/Application Support/crateaudit/config.cue
- Windows: %APPDATA%\crateaudit\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ crateaudit config init
~~~

- Check the file for CUE syntax errors
- Remove the file to fall back to built-in defaults`,
	}

	manifestReadFailedIssue = &Issue{
		id: ManifestReadFailedId,
		mdMsg: `
# Failed to read manifest!

The Cargo.toml you pointed --manifest at could not be read or parsed.

## Things you can try:
- Check the path for typos:
~~~
$ crateaudit check --manifest path/to/Cargo.toml
~~~

- Validate the TOML syntax (a trailing comma or unclosed table is the usual culprit)
- Make sure the manifest declares at least one dependency table`,
	}

	registryUnreachableIssue = &Issue{
		id: RegistryUnreachableId,
		mdMsg: `
# Could not reach the registry!

Every lookup against the registry failed before a single crate resolved.

## Things you can try:
- Check your network connection and proxy settings
- Confirm the registry base URL in your config:
~~~
$ crateaudit config show
~~~

- Retry later; crates.io throttles unauthenticated clients that burst requests`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		manifestReadFailedIssue.Id():  manifestReadFailedIssue,
		registryUnreachableIssue.Id(): registryUnreachableIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
