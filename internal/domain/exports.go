package domain

import (
	interfaces "tracknum/internal/domain/interfaces"
	types "tracknum/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Courier                = types.Courier
	Product                = types.Product
	SerialNumber           = types.SerialNumber
	Info                   = types.Info
	ValidationError        = types.ValidationError
	TrackingNumber         = types.TrackingNumber
	CourierSpec            = types.CourierSpec
	TrackingNumberSpec     = types.TrackingNumberSpec
	RegexSpec              = types.RegexSpec
	ValidationSpec         = types.ValidationSpec
	ChecksumSpec           = types.ChecksumSpec
	SerialNumberFormatSpec = types.SerialNumberFormatSpec
	PrependIfSpec          = types.PrependIfSpec
	AdditionalExistsSpec   = types.AdditionalExistsSpec
	AdditionalSpec         = types.AdditionalSpec
	TestNumbersSpec        = types.TestNumbersSpec
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ChecksumValidator  = interfaces.ChecksumValidator
	SerialNumberParser = interfaces.SerialNumberParser
	ValueMatcher       = interfaces.ValueMatcher
)

// RemoveWhitespace re-exports the whitespace stripper used on raw captures.
var RemoveWhitespace = types.RemoveWhitespace
