package cli

import (
	"github.com/charmbracelet/log"
	"github.com/sitepack-labs/sitepack/internal/branding"
	"github.com/sitepack-labs/sitepack/internal/config"
	"github.com/sitepack-labs/sitepack/internal/fetch"
	"github.com/sitepack-labs/sitepack/internal/installer"
	"github.com/sitepack-labs/sitepack/internal/logging"
	"github.com/sitepack-labs/sitepack/internal/sites"
	"github.com/sitepack-labs/sitepack/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// app wires the browser and installer for one command invocation.
type app struct {
	logger    *log.Logger
	browser   *sites.Browser
	installer *installer.Installer
	term      *ui.Terminal
}

func newApp(cmd *cobra.Command, assumeYes bool) (*app, error) {
	level := logLevelFlag
	if level == "" {
		level = config.LogLevel()
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, err
	}

	lang, err := language.Parse(config.Locale())
	if err != nil {
		logger.Warn("unknown locale, using English", "locale", config.Locale())
		lang = language.English
	}

	client := fetch.New(fetch.WithUserAgent(branding.UserAgent()))
	agg := sites.NewAggregator(client, config.SiteURLs,
		sites.WithLanguage(lang),
		sites.WithLogger(logger.WithPrefix("sites")))

	term := ui.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), branding.ViewName(), assumeYes)

	folders := ui.Folders(workspaceFlag)
	if len(folders) == 0 {
		folders = ui.Folders(config.WorkspaceFolders())
	}

	inst := installer.New(client, folders, term,
		installer.WithProgress(term),
		installer.WithMinProgress(config.MinProgress()),
		installer.WithLogger(logger.WithPrefix("installer")))

	return &app{
		logger:    logger,
		browser:   sites.NewBrowser(agg, logger.WithPrefix("browser")),
		installer: inst,
		term:      term,
	}, nil
}
