package main

import (
	"fmt"

	"github.com/fwojciec/wikiintro"
)

// Run executes the intro command.
func (c *IntroCmd) Run(deps *Dependencies) error {
	topic := wikiintro.JoinTopic(c.Topic)
	if len(topic) == 0 {
		fmt.Fprintln(deps.Stdout, "Please enter a topic :")

		line, err := readTopic(deps.Stdin)
		if err != nil {
			return err
		}
		topic = line
	}

	topic = wikiintro.NormalizeTopic(topic)
	fmt.Fprintf(deps.Stdout, "The topic is %s\n\n", topic)

	return c.printIntro(deps, topic)
}

func (c *IntroCmd) printIntro(deps *Dependencies, topic string) error {
	addr, err := wikiintro.Address(c.BaseURL, topic)
	if err != nil {
		return &FatalError{Prefix: malformedURLPrefix, Message: wikiintro.ErrorMessage(err)}
	}

	body, err := deps.Opener.Open(deps.Ctx, addr)
	if wikiintro.ErrorCode(err) == wikiintro.EUNAVAILABLE {
		fmt.Fprintln(deps.Stdout, "Not Found")
		return nil
	} else if err != nil {
		return &FatalError{Prefix: pageNotFoundPrefix, Message: wikiintro.ErrorMessage(err)}
	}
	defer body.Close()

	text, err := deps.Extractor.Extract(body)
	if err != nil {
		return &FatalError{Prefix: pageNotFoundPrefix, Message: wikiintro.ErrorMessage(err)}
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
