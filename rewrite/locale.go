package rewrite

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/dirfix"
	"golang.org/x/text/language"
)

// Scripts written from right to left.
var rtlScripts = []language.Script{
	language.MustParseScript("Arab"),
	language.MustParseScript("Hebr"),
	language.MustParseScript("Syrc"),
	language.MustParseScript("Thaa"),
	language.MustParseScript("Nkoo"),
	language.MustParseScript("Adlm"),
	language.MustParseScript("Rohg"),
	language.MustParseScript("Mand"),
	language.MustParseScript("Samr"),
}

// DirectionForLocale returns the writing direction of the script of a
// locale, given as a BCP 47 tag (e.g., "fa-IR", "he", "en-US"). If the
// locale does not name a script, the most likely script of the language is
// used.
func DirectionForLocale(locale string) dirfix.Direction {
	lang, err := language.Parse(locale)
	if err != nil {
		tracer().Errorf("cannot parse locale %q: %v", locale, err)
		return dirfix.LTR
	}
	script, confidence := lang.Script()
	if confidence == language.No {
		return dirfix.LTR
	}
	for _, s := range rtlScripts {
		if s == script {
			return dirfix.RTL
		}
	}
	return dirfix.LTR
}

// DirectionFromEnvironment returns the writing direction of the user's
// locale, as found in the environment. If no locale can be detected, LTR
// is returned.
func DirectionFromEnvironment() dirfix.Direction {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = "en-US"
		tracer().Infof("dirfix sets default user locale %v", userLocale)
	} else {
		tracer().Infof("dirfix detected user locale %v", userLocale)
	}
	return DirectionForLocale(userLocale)
}
