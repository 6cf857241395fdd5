package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/shinyrainbow/thea5995property-sub000/numfmt"
)

const (
	keyPrice    = "listing.price"
	keyArea     = "listing.area"
	keyBedrooms = "listing.bedrooms"
	keyLogFile  = "log.file"
	keyLogLevel = "log.level"
)

// listing is the externally bound form data. Unset values are null.
type listing struct {
	Price    numfmt.Value
	Area     numfmt.Value
	Bedrooms numfmt.Value
}

func (l listing) String() string {
	return fmt.Sprintf("price=%s area=%s bedrooms=%s", l.Price, l.Area, l.Bedrooms)
}

type logSettings struct {
	File  string
	Level slog.Level
}

type settings struct {
	Listing listing
	Log     logSettings
}

func loadSettings(v *viper.Viper) (settings, error) {
	var s settings
	var err error

	if s.Listing.Price, err = listingValue(v, keyPrice); err != nil {
		return settings{}, err
	}
	if s.Listing.Area, err = listingValue(v, keyArea); err != nil {
		return settings{}, err
	}
	if s.Listing.Bedrooms, err = listingValue(v, keyBedrooms); err != nil {
		return settings{}, err
	}

	s.Log.File = v.GetString(keyLogFile)
	level := v.GetString(keyLogLevel)
	if level == "" {
		level = "info"
	}
	if err := s.Log.Level.UnmarshalText([]byte(level)); err != nil {
		return settings{}, fmt.Errorf("invalid %s %q: %w", keyLogLevel, level, err)
	}
	return s, nil
}

func listingValue(v *viper.Viper, key string) (numfmt.Value, error) {
	if !v.IsSet(key) {
		return numfmt.Null(), nil
	}
	raw := v.Get(key)
	if s, ok := raw.(string); ok && s == "" {
		return numfmt.Null(), nil
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return numfmt.Value{}, fmt.Errorf("invalid %s: %w", key, err)
	}
	if f < 0 {
		return numfmt.Value{}, fmt.Errorf("invalid %s: %v is negative", key, f)
	}
	val := numfmt.Number(f)
	if val.IsNull() {
		return numfmt.Value{}, fmt.Errorf("invalid %s: %v is not finite", key, f)
	}
	return val, nil
}
