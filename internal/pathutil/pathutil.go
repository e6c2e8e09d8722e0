// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envVar = "ASCEND_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = newPaths(os.Getenv(envVar))
		initErr = paths.computePaths()
	})

	return initErr
}

func newPaths(env string) *Paths {
	p := &Paths{
		configDir:      "ascend",
		configFileName: "config.yml",
		dbFileName:     "ascend.db",
		logFileName:    "ascend.log",
	}

	env = strings.TrimSpace(env)
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("ascend_%s.db", env)
		p.logFileName = fmt.Sprintf("ascend_%s.log", env)
	}

	return p
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	p.dbFilePath, err = xdg.DataFile(filepath.Join(p.configDir, p.dbFileName))
	if err != nil {
		return err
	}

	p.logFilePath, err = xdg.DataFile(
		filepath.Join(p.configDir, "log", p.logFileName),
	)
	if err != nil {
		return err
	}

	return nil
}
