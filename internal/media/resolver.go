package media

import "strings"

// Resolver 把存储的相对路径拼成绝对 URL：WebsiteURL + URLPrefix + path。
// 纯函数，不做任何 I/O。
type Resolver struct {
	WebsiteURL string // 如 http://localhost:8000
	URLPrefix  string // 如 /media/
}

func NewResolver(websiteURL, urlPrefix string) Resolver {
	return Resolver{WebsiteURL: websiteURL, URLPrefix: urlPrefix}
}

// URL 相对路径为空时返回空串，前端按无图处理
func (r Resolver) URL(relPath string) string {
	if relPath == "" {
		return ""
	}
	base := strings.TrimRight(r.WebsiteURL, "/")
	prefix := "/" + strings.Trim(r.URLPrefix, "/")
	return base + prefix + "/" + strings.TrimLeft(relPath, "/")
}
