package wikiintro

import (
	"net/url"
	"strings"
)

// JoinTopic joins command-line words into a topic, one space between words.
func JoinTopic(args []string) string {
	return strings.Join(args, " ")
}

// NormalizeTopic replaces every space in topic with an underscore.
func NormalizeTopic(topic string) string {
	return strings.ReplaceAll(topic, " ", "_")
}

// Address appends topic to base and validates the result.
// The topic is not escaped; reserved characters keep their URL meaning.
func Address(base, topic string) (string, error) {
	addr := base + topic

	u, err := url.Parse(addr)
	if err != nil {
		return "", Errorf(EINVALID, "%v", err)
	}
	if u.Scheme == "" {
		return "", Errorf(EINVALID, "no protocol: %s", addr)
	}

	return addr, nil
}
