package sandhi

// prefixForm pairs an upasarga with the shape it takes at the front of a
// combined word.
type prefixForm struct {
	canonical string
	surface   string
}

// prefixForms lists common upasargas by surface form.
var prefixForms = []prefixForm{
	// यण्: final इ/उ became य/व before a vowel.
	{"अति", "अत्य"},
	{"अधि", "अध्य"},
	{"अभि", "अभ्य"},
	{"प्रति", "प्रत्य"},
	{"परि", "पर्य"},
	{"नि", "न्य"},
	{"वि", "व्य"},
	{"अनु", "अन्व"},
	{"सु", "स्व"},

	// Final अ merged with the next vowel into a sign.
	{"उप", "उप"},
	{"प्र", "प्र"},
	{"अप", "अप"},

	// Visarga became र before a vowel.
	{"पुनः", "पुनर"},
	{"निः", "निर"},
	{"दुः", "दुर"},
	{"अन्तः", "अन्तर"},
	{"बहिः", "बहिर"},
}
