package main

import (
	"strings"
	"sync"

	"stylus/internal/config"
	"stylus/internal/crate"
)

// commandContext lazily resolves configuration and the API client so that
// flag parsing stays cheap and commands share one client.
type commandContext struct {
	serverFlag *string
	configFlag *string

	configOnce sync.Once
	config     config.Config
	configErr  error

	clientOnce sync.Once
	client     *crate.Client
	clientErr  error
}

func newCommandContext(serverFlag, configFlag *string) *commandContext {
	return &commandContext{
		serverFlag: serverFlag,
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.serverFlag != nil && strings.TrimSpace(*c.serverFlag) != "" {
			cfg.ServerURL = strings.TrimSpace(*c.serverFlag)
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) crateClient() (*crate.Client, error) {
	c.clientOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.clientErr = err
			return
		}
		c.client, c.clientErr = crate.NewClient(cfg.ServerURL)
	})
	return c.client, c.clientErr
}
