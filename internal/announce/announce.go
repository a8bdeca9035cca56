// Package announce pushes notifications about the vault server
// lifecycle to shoutrrr addresses, if any are configured.
package announce

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
)

type Erroer interface {
	Error(s string)
}

type Client struct {
	serviceRouter *router.ServiceRouter
	serviceNames  []string
	logger        Erroer
}

// New creates a notification client for the given shoutrrr addresses.
// With no address, the client is a no-op.
func New(addresses []string, defaultTitle string, logger Erroer) (
	client *Client, err error) {
	for i, address := range addresses {
		addresses[i], err = addDefaultTitle(address, defaultTitle)
		if err != nil {
			return nil, err
		}
	}

	serviceRouter, err := shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	serviceNames := make([]string, len(addresses))
	for i, address := range addresses {
		serviceNames[i] = strings.Split(address, ":")[0]
	}

	return &Client{
		serviceRouter: serviceRouter,
		serviceNames:  serviceNames,
		logger:        logger,
	}, nil
}

func (c *Client) Notify(message string) {
	errs := c.serviceRouter.Send(message, nil)
	for i, err := range errs {
		if err != nil {
			c.logger.Error(c.serviceNames[i] + ": " + err.Error())
		}
	}
}

func addDefaultTitle(address, defaultTitle string) (
	updatedAddress string, err error) {
	u, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("parsing address as url: %w", err)
	}

	urlValues := u.Query()
	if urlValues.Has("title") {
		return address, nil
	}

	urlValues.Set("title", defaultTitle)
	u.RawQuery = urlValues.Encode()
	return u.String(), nil
}
