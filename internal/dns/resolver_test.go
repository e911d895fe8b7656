package dns_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portscribe/internal/dns"
	"portscribe/internal/exception"
)

func TestShortName(t *testing.T) {
	assert.Equal(t, "ws-0113", dns.ShortName("ws-0113.corp.example.com"))
	assert.Equal(t, "ws-0113", dns.ShortName("ws-0113"))
	assert.Equal(t, "", dns.ShortName(""))
}

func TestReverseNoServers(t *testing.T) {
	resolver := dns.NewPTRResolver([]string{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := resolver.Reverse(ctx, "10.0.0.10")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, exception.ErrHostNotFound))
}

func TestReverseInvalidIP(t *testing.T) {
	resolver := dns.NewPTRResolver([]string{"10.0.0.53"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := resolver.Reverse(ctx, "not-an-ip")

	assert.Error(t, err)
}
