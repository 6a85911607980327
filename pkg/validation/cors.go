package validation

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// hostLabel RFC 1123 호스트명 레이블 (영문/숫자로 시작하고 끝나며 최대 63자)
var hostLabel = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)

// ValidateCORSOrigin 문자열이 "*" 또는 "scheme://host[:port]" 형식의 Origin인지 검증합니다.
//
// 스키마는 http/https만 허용합니다. 호스트는 localhost, IP 주소, RFC 1123 도메인명 중 하나여야 합니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	switch origin {
	case "*":
		return nil
	case "":
		return errors.New("CORS Origin은 비어있을 수 없습니다")
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin이 유효한 URL 형식이 아닙니다 (input=%q): %w", origin, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin 스키마는 'http' 또는 'https'만 허용됩니다 (input=%q)", origin)
	}
	if u.Opaque != "" || u.User != nil || u.Path != "" || u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return fmt.Errorf("CORS Origin은 scheme://host[:port] 외의 요소를 포함할 수 없습니다 (input=%q)", origin)
	}

	if p := u.Port(); p != "" {
		if n, err := strconv.Atoi(p); err != nil || n < 1 || n > 65535 {
			return fmt.Errorf("CORS Origin 포트가 1-65535 범위가 아닙니다 (input=%q)", origin)
		}
	}

	if !validHost(u.Hostname()) {
		return fmt.Errorf("CORS Origin 호스트가 유효하지 않습니다 (input=%q)", origin)
	}

	return nil
}

func validHost(host string) bool {
	if host == "localhost" || net.ParseIP(host) != nil {
		return true
	}
	if host == "" || len(host) > 253 {
		return false
	}

	labels := strings.Split(host, ".")
	for _, l := range labels {
		if !hostLabel.MatchString(l) {
			return false
		}
	}

	// 숫자로만 된 TLD는 IP 주소 오기입니다.
	return strings.Trim(labels[len(labels)-1], "0123456789") != ""
}
