package usecasecontract

import "time"

// IAppLogger is the logging facade handed to every usecase.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes the configuration values usecases care about.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetOfficeEmail() string
	GetBlogCacheTTL() time.Duration
	GetBlogCacheMaxKeys() int
	GetResourceCacheTTL() time.Duration
}

// IValidator validates user-supplied values at the write boundary.
type IValidator interface {
	ValidateEmail(email string) error
}

// IUUIDGenerator produces document identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}
