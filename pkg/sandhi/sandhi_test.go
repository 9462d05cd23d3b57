package sandhi

import (
	"errors"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		first    string
		second   string
		expected string
		category Category
	}{
		// यण्
		{"अति", "अधिक", "अत्यधिक", Vowel},
		{"अनु", "अय", "अन्वय", Vowel},

		// दीर्घ, गुण, वृद्धि
		{"हिम", "आलय", "हिमालय", Vowel},
		{"विद्या", "आलय", "विद्यालय", Vowel},
		{"देव", "इन्द्र", "देवेन्द्र", Vowel},
		{"सूर्य", "उदय", "सूर्योदय", Vowel},
		{"सदा", "एव", "सदैव", Vowel},
		{"वन", "औषधि", "वनौषधि", Vowel},
		{"देव", "ऋषि", "देवर्षि", Vowel},
		{"महा", "ऋषि", "महर्षि", Vowel},
		{"प्र", "अध्यापक", "प्राध्यापक", Vowel},
		{"प्र", "ईक्षा", "प्रेक्षा", Vowel},

		// अयादि
		{"ने", "अन", "नयन", Vowel},
		{"पो", "अन", "पवन", Vowel},
		{"नै", "अक", "नायक", Vowel},
		{"पौ", "अक", "पावक", Vowel},
		// The following vowel lands on य as a sign.
		{"ने", "इ", "नयि", Vowel},

		// विसर्ग
		{"पुनः", "अवलोकन", "पुनरवलोकन", Visarga},
		{"पुनः", "आगमन", "पुनरागमन", Visarga},
		{"पुनः", "स्थापना", "पुनःस्थापना", Visarga},
		{"प्रातः", "काल", "प्रातःकाल", Visarga},
		{"निः", "चय", "निश्चय", Visarga},
		{"धनुः", "टङ्कार", "धनुष्टङ्कार", Visarga},
		{"मनः", "ताप", "मनस्ताप", Visarga},
		{"दुः", "गति", "दुरगति", Visarga},

		// व्यञ्जन
		{"उत्", "लिखित", "उल्लिखित", Consonant},
		{"उत्", "चारण", "उच्चारण", Consonant},
		{"उत्", "हार", "उद्धार", Consonant},
		{"सम्", "कल्प", "सङ्कल्प", Consonant},
		{"महत्", "त्व", "महत्त्व", Consonant},
		{"वाक्", "मय", "वाङ्मय", Consonant},
		{"जगत्", "नाथ", "जगन्नाथ", Consonant},
		{"सत्", "गति", "सद्गति", Consonant},
		{"दिक्", "गज", "दिग्गज", Consonant},
	}

	for _, tt := range tests {
		out, err := Apply(tt.first, tt.second)
		if err != nil {
			t.Errorf("Apply(%q, %q) error: %v", tt.first, tt.second, err)
			continue
		}
		if out.Output != tt.expected {
			t.Errorf("Apply(%q, %q) = %q, want %q", tt.first, tt.second, out.Output, tt.expected)
		}
		if out.Category != tt.category {
			t.Errorf("Apply(%q, %q) category = %v, want %v", tt.first, tt.second, out.Category, tt.category)
		}
		if out.Citation == "" {
			t.Errorf("Apply(%q, %q) has empty citation", tt.first, tt.second)
		}
	}
}

func TestApply_YanKeepsFollowingVowel(t *testing.T) {
	// Only the inherent vowel is absorbed after य/व; others stay letters.
	tests := []struct {
		first    string
		second   string
		expected string
	}{
		{"अति", "उत्तम", "अत्यउत्तम"},
		{"सु", "आगत", "स्वआगत"},
		{"इति", "अलम्", "इत्यलम्"},
	}

	for _, tt := range tests {
		out, err := Apply(tt.first, tt.second)
		if err != nil {
			t.Errorf("Apply(%q, %q) error: %v", tt.first, tt.second, err)
			continue
		}
		if out.Output != tt.expected {
			t.Errorf("Apply(%q, %q) = %q, want %q", tt.first, tt.second, out.Output, tt.expected)
		}
	}
}

func TestApply_VisargaBeforeVowel(t *testing.T) {
	out, err := Apply("अन्तः", "आत्मा")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if out.Output != "अन्तरात्मा" || out.Category != Visarga {
		t.Errorf("Apply(अन्तः, आत्मा) = %+v, want अन्तरात्मा/visarga", out)
	}
}

func TestApply_EmptyInput(t *testing.T) {
	tests := [][2]string{
		{"", "अधिक"},
		{"अति", ""},
		{"", ""},
	}

	for _, tt := range tests {
		_, err := Apply(tt[0], tt[1])
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Apply(%q, %q) error = %v, want ErrEmptyInput", tt[0], tt[1], err)
		}
	}
}

func TestApply_NoRule(t *testing.T) {
	tests := [][2]string{
		{"राम", "कृष्ण"},
		{"घर", "मा"},
		{"hello", "world"},
		{"किताब", "१२"},
	}

	for _, tt := range tests {
		_, err := Apply(tt[0], tt[1])
		if !errors.Is(err, ErrNoRule) {
			t.Errorf("Apply(%q, %q) error = %v, want ErrNoRule", tt[0], tt[1], err)
			continue
		}
		var nre *NoRuleError
		if !errors.As(err, &nre) {
			t.Errorf("Apply(%q, %q) error is %T, want *NoRuleError", tt[0], tt[1], err)
			continue
		}
		if nre.First != tt[0] || nre.Second != tt[1] {
			t.Errorf("NoRuleError = %+v, want %q + %q", nre, tt[0], tt[1])
		}
		if errors.Is(err, ErrEmptyInput) {
			t.Errorf("Apply(%q, %q) error matches ErrEmptyInput", tt[0], tt[1])
		}
	}
}

func TestApply_Deterministic(t *testing.T) {
	first, err := Apply("सूर्य", "उदय")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Apply("सूर्य", "उदय")
		if err != nil || again != first {
			t.Fatalf("Apply run %d = %+v, %v; want %+v", i, again, err, first)
		}
	}
}

func TestCategory_Names(t *testing.T) {
	tests := []struct {
		c     Category
		name  string
		label string
	}{
		{Vowel, "vowel", "स्वर सन्धि"},
		{Visarga, "visarga", "विसर्ग सन्धि"},
		{Consonant, "consonant", "व्यञ्जन सन्धि"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.name {
			t.Errorf("%d.String() = %q, want %q", int(tt.c), got, tt.name)
		}
		if got := tt.c.Label(); got != tt.label {
			t.Errorf("%d.Label() = %q, want %q", int(tt.c), got, tt.label)
		}
	}

	if got := Category(9).String(); got != "Category(9)" {
		t.Errorf("Category(9).String() = %q", got)
	}
}
