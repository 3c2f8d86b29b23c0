// Package geoip maps IPv4 addresses to countries using an embedded,
// curated range table. Lookup is a first-match linear scan over a list
// ordered most-specific-first; the table is small enough that a trie
// buys nothing.
package geoip

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// CountryInfo describes the owner of an address range.
type CountryInfo struct {
	Code string // ISO 3166-1 alpha-2, or PRIVATE/LOCAL for special ranges
	Flag string
	Name string
}

// Range is an inclusive [Start, End] span of IPv4 address space.
type Range struct {
	Start uint32
	End   uint32
	Info  CountryInfo
}

// Contains reports whether ip falls inside the range.
func (r Range) Contains(ip uint32) bool {
	return ip >= r.Start && ip <= r.End
}

// cidr builds an inclusive range from a.b.c.d/prefix.
func cidr(a, b, c, d byte, prefix uint, code, flag, name string) Range {
	ip := uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d)
	mask := ^uint32(0)
	if prefix < 32 {
		mask <<= 32 - prefix
	}
	return Range{
		Start: ip & mask,
		End:   ip | ^mask,
		Info:  CountryInfo{Code: code, Flag: flag, Name: name},
	}
}

// ParseIPv4 parses dotted-quad notation into a uint32.
func ParseIPv4(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("geoip: not an IPv4 address: %q", s)
	}
	var ip uint32
	for _, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("geoip: not an IPv4 address: %q", s)
		}
		ip = ip<<8 | uint32(v)
	}
	return ip, nil
}

// LookupU32 scans the table and returns the first matching range's info.
func LookupU32(ip uint32) (CountryInfo, bool) {
	for _, r := range ranges {
		if r.Contains(ip) {
			return r.Info, true
		}
	}
	return CountryInfo{}, false
}

// Lookup resolves a dotted-quad address, with or without a :port
// suffix. Unparseable or unlisted addresses report false.
func Lookup(addr string) (CountryInfo, bool) {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	ip, err := ParseIPv4(addr)
	if err != nil {
		return CountryInfo{}, false
	}
	return LookupU32(ip)
}

// Flag returns the flag glyph for addr, or "🌐" on a miss.
func Flag(addr string) string {
	if info, ok := Lookup(addr); ok {
		return info.Flag
	}
	return "🌐"
}

// CountryCode returns the country code for addr, or "??" on a miss.
func CountryCode(addr string) string {
	if info, ok := Lookup(addr); ok {
		return info.Code
	}
	return "??"
}
