package person

import "errors"

// ErrInvalidName is returned when a name is blank or contains unsupported characters.
var ErrInvalidName = errors.New("names should only contain letters, digits and spaces, and should not be blank")

// ErrInvalidPhone is returned for phone numbers with fewer than three digits or stray characters.
var ErrInvalidPhone = errors.New("phone numbers should contain at least 3 digits, optionally prefixed with +")

// ErrInvalidEmail is returned for addresses that are not shaped like local@domain.tld.
var ErrInvalidEmail = errors.New("emails should be of the format local-part@domain")

// ErrInvalidAddress is returned for blank or multi-line addresses.
var ErrInvalidAddress = errors.New("addresses should be a single non-blank line")

// ErrInvalidTag is returned for tags that are empty or contain unsupported characters.
var ErrInvalidTag = errors.New("tags should only contain letters, digits, - and _")

// ErrInvalidLogTitle is returned when a log title fails IsValidLogTitle.
var ErrInvalidLogTitle = errors.New("log titles should be a single non-blank line of at most 60 characters")
