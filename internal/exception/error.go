package exception

import "errors"

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrHostNotFound returned when a reverse DNS query yields no name
var ErrHostNotFound = errors.New("host not found")

// ErrArpMiss returned when a MAC has no entry in the router arp table
var ErrArpMiss = errors.New("no arp entry for mac")
