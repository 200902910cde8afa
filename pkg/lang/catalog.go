package lang

// ISO 639-1 registry. Each entry carries the two-letter code, the canonical
// English name, and alternate spellings (mostly native names) that Parse
// also accepts.
type entry struct {
	code       string
	name       string
	alternates []string
}

var catalog = []entry{
	{code: "aa", name: "Afar", alternates: []string{"Afaraf"}},
	{code: "ab", name: "Abkhaz", alternates: []string{"аҧсшәа"}},
	{code: "ae", name: "Avestan", alternates: []string{"Avesta"}},
	{code: "af", name: "Afrikaans"},
	{code: "ak", name: "Akan"},
	{code: "am", name: "Amharic", alternates: []string{"አማርኛ"}},
	{code: "an", name: "Aragonese", alternates: []string{"aragonés"}},
	{code: "ar", name: "Arabic", alternates: []string{"العربية"}},
	{code: "as", name: "Assamese", alternates: []string{"অসমীয়া"}},
	{code: "av", name: "Avaric", alternates: []string{"авар мацӀ", "магӀарул мацӀ"}},
	{code: "ay", name: "Aymara", alternates: []string{"aymar aru"}},
	{code: "az", name: "Azerbaijani", alternates: []string{"azərbaycan dili"}},
	{code: "ba", name: "Bashkir", alternates: []string{"башҡорт теле"}},
	{code: "be", name: "Belarusian", alternates: []string{"беларуская мова"}},
	{code: "bg", name: "Bulgarian", alternates: []string{"български език"}},
	{code: "bh", name: "Bihari", alternates: []string{"भोजपुरी"}},
	{code: "bi", name: "Bislama"},
	{code: "bm", name: "Bambara", alternates: []string{"bamanankan"}},
	{code: "bn", name: "Bengali", alternates: []string{"Bangla", "বাংলা"}},
	{code: "bo", name: "Tibetan", alternates: []string{"Tibetan Standard", "བོད་ཡིག"}},
	{code: "br", name: "Breton", alternates: []string{"brezhoneg"}},
	{code: "bs", name: "Bosnian", alternates: []string{"bosanski jezik"}},
	{code: "ca", name: "Catalan", alternates: []string{"català"}},
	{code: "ce", name: "Chechen", alternates: []string{"нохчийн мотт"}},
	{code: "ch", name: "Chamorro", alternates: []string{"Chamoru"}},
	{code: "co", name: "Corsican", alternates: []string{"corsu", "lingua corsa"}},
	{code: "cr", name: "Cree", alternates: []string{"ᓀᐦᐃᔭᐍᐏᐣ"}},
	{code: "cs", name: "Czech", alternates: []string{"čeština", "český jazyk"}},
	{code: "cu", name: "Church Slavonic", alternates: []string{"Old Church Slavonic", "Old Bulgarian", "ѩзыкъ словѣньскъ"}},
	{code: "cv", name: "Chuvash", alternates: []string{"чӑваш чӗлхи"}},
	{code: "cy", name: "Welsh", alternates: []string{"Cymraeg"}},
	{code: "da", name: "Danish", alternates: []string{"dansk"}},
	{code: "de", name: "German", alternates: []string{"Deutsch"}},
	{code: "dv", name: "Divehi", alternates: []string{"Dhivehi", "Maldivian", "ދިވެހި"}},
	{code: "dz", name: "Dzongkha", alternates: []string{"རྫོང་ཁ"}},
	{code: "ee", name: "Ewe", alternates: []string{"Eʋegbe"}},
	{code: "el", name: "Greek", alternates: []string{"modern", "ελληνικά"}},
	{code: "en", name: "English"},
	{code: "eo", name: "Esperanto"},
	{code: "es", name: "Spanish", alternates: []string{"Español"}},
	{code: "et", name: "Estonian", alternates: []string{"eesti", "eesti keel"}},
	{code: "eu", name: "Basque", alternates: []string{"euskara", "euskera"}},
	{code: "fa", name: "Persian", alternates: []string{"Farsi", "فارسی"}},
	{code: "ff", name: "Fula", alternates: []string{"Fulah", "Pulaar", "Pular", "Fulfulde"}},
	{code: "fi", name: "Finnish", alternates: []string{"suomi", "suomen kieli"}},
	{code: "fj", name: "Fijian", alternates: []string{"vosa Vakaviti"}},
	{code: "fo", name: "Faroese", alternates: []string{"føroyskt"}},
	{code: "fr", name: "French", alternates: []string{"français"}},
	{code: "fy", name: "Western Frisian", alternates: []string{"Frysk"}},
	{code: "ga", name: "Irish", alternates: []string{"Gaeilge"}},
	{code: "gd", name: "Scottish Gaelic", alternates: []string{"Gaelic", "Gàidhlig"}},
	{code: "gl", name: "Galician", alternates: []string{"galego"}},
	{code: "gn", name: "Guaraní", alternates: []string{"Avañe'ẽ"}},
	{code: "gu", name: "Gujarati", alternates: []string{"ગુજરાતી"}},
	{code: "gv", name: "Manx", alternates: []string{"Gaelg", "Gailck"}},
	{code: "ha", name: "Hausa", alternates: []string{"Hausa", "هَوُسَ"}},
	{code: "he", name: "Hebrew", alternates: []string{"עברית"}},
	{code: "hi", name: "Hindi", alternates: []string{"हिन्दी", "हिंदी"}},
	{code: "ho", name: "Hiri Motu"},
	{code: "hr", name: "Croatian", alternates: []string{"hrvatski jezik"}},
	{code: "ht", name: "Haitian", alternates: []string{"Haitian Creole", "Kreyòl ayisyen"}},
	{code: "hu", name: "Hungarian", alternates: []string{"magyar"}},
	{code: "hy", name: "Armenian", alternates: []string{"Հայերեն"}},
	{code: "hz", name: "Herero", alternates: []string{"Otjiherero"}},
	{code: "ia", name: "Interlingua"},
	{code: "id", name: "Indonesian", alternates: []string{"Bahasa Indonesia"}},
	{code: "ie", name: "Interlingue", alternates: []string{"Occidental"}},
	{code: "ig", name: "Igbo", alternates: []string{"Asụsụ Igbo"}},
	{code: "ii", name: "Nuosu", alternates: []string{"ꆈꌠ꒿ Nuosuhxop"}},
	{code: "ik", name: "Inupiaq", alternates: []string{"Iñupiaq", "Iñupiatun"}},
	{code: "io", name: "Ido"},
	{code: "is", name: "Icelandic", alternates: []string{"Íslenska"}},
	{code: "it", name: "Italian", alternates: []string{"Italiano"}},
	{code: "iu", name: "Inuktitut", alternates: []string{"ᐃᓄᒃᑎᑐᑦ"}},
	{code: "ja", name: "Japanese", alternates: []string{"日本語", "にほんご"}},
	{code: "jv", name: "Javanese", alternates: []string{"ꦧꦱꦗꦮ", "Basa Jawa"}},
	{code: "ka", name: "Georgian", alternates: []string{"ქართული"}},
	{code: "kg", name: "Kongo", alternates: []string{"Kikongo"}},
	{code: "ki", name: "Kikuyu", alternates: []string{"Gikuyu", "Gĩkũyũ"}},
	{code: "kj", name: "Kwanyama", alternates: []string{"Kuanyama", "Kuanyama"}},
	{code: "kk", name: "Kazakh", alternates: []string{"қазақ тілі"}},
	{code: "kl", name: "Kalaallisut", alternates: []string{"Greenlandic", "kalaallisut", "kalaallit oqaasii"}},
	{code: "km", name: "Khmer", alternates: []string{"ខ្មែរ", "ខេមរភាសា", "ភាសាខ្មែរ"}},
	{code: "kn", name: "Kannada", alternates: []string{"ಕನ್ನಡ"}},
	{code: "ko", name: "Korean", alternates: []string{"한국어"}},
	{code: "kr", name: "Kanuri"},
	{code: "ks", name: "Kashmiri", alternates: []string{"कश्मीरी", "كشميري"}},
	{code: "ku", name: "Kurdish", alternates: []string{"Kurdî", "كوردی"}},
	{code: "kv", name: "Komi", alternates: []string{"коми кыв"}},
	{code: "kw", name: "Cornish", alternates: []string{"Kernewek"}},
	{code: "ky", name: "Kyrgyz", alternates: []string{"Кыргызча", "Кыргыз тили"}},
	{code: "la", name: "Latin", alternates: []string{"latine", "lingua latina"}},
	{code: "lb", name: "Luxembourgish", alternates: []string{"Letzeburgesch", "Lëtzebuergesch"}},
	{code: "lg", name: "Ganda", alternates: []string{"Luganda"}},
	{code: "li", name: "Limburgish", alternates: []string{"Limburgan", "Limburger", "Limburgs"}},
	{code: "ln", name: "Lingala", alternates: []string{"Lingála"}},
	{code: "lo", name: "Lao", alternates: []string{"ພາສາລາວ"}},
	{code: "lt", name: "Lithuanian", alternates: []string{"lietuvių kalba"}},
	{code: "lu", name: "Luba-Katanga", alternates: []string{"Tshiluba"}},
	{code: "lv", name: "Latvian", alternates: []string{"latviešu valoda"}},
	{code: "mg", name: "Malagasy", alternates: []string{"fiteny malagasy"}},
	{code: "mh", name: "Marshallese", alternates: []string{"Kajin M̧ajeļ"}},
	{code: "mi", name: "Māori", alternates: []string{"te reo Māori"}},
	{code: "mk", name: "Macedonian", alternates: []string{"македонски јазик"}},
	{code: "ml", name: "Malayalam", alternates: []string{"മലയാളം"}},
	{code: "mn", name: "Mongolian", alternates: []string{"Монгол хэл"}},
	{code: "mr", name: "Marathi", alternates: []string{"Marāṭhī", "मराठी"}},
	{code: "ms", name: "Malay", alternates: []string{"bahasa Melayu", "بهاس ملايو"}},
	{code: "mt", name: "Maltese", alternates: []string{"Malti"}},
	{code: "my", name: "Burmese", alternates: []string{"ဗမာစာ"}},
	{code: "na", name: "Nauruan", alternates: []string{"Dorerin Naoero"}},
	{code: "nb", name: "Norwegian Bokmål", alternates: []string{"Norsk bokmål"}},
	{code: "nd", name: "Northen Ndbele", alternates: []string{"isiNdebele"}},
	{code: "ne", name: "Nepali", alternates: []string{"नेपाली"}},
	{code: "ng", name: "Ndonga", alternates: []string{"Owambo"}},
	{code: "nl", name: "Dutch", alternates: []string{"Nederlands", "Vlaams"}},
	{code: "nn", name: "Norwegian Nynorsk", alternates: []string{"Norsk nynorsk"}},
	{code: "no", name: "Norwegian", alternates: []string{"Norsk"}},
	{code: "nr", name: "Southen Ndebele", alternates: []string{"isiNdebele"}},
	{code: "nv", name: "Navajo", alternates: []string{"Navaho", "Diné bizaad"}},
	{code: "ny", name: "Chichewa", alternates: []string{"Chewa", "Nyanja", "chiCheŵa", "chinyanja"}},
	{code: "oc", name: "Occitan", alternates: []string{"occitan", "lenga d'òc"}},
	{code: "oj", name: "Ojibwe", alternates: []string{"Ojibwa", "ᐊᓂᔑᓈᐯᒧᐎᓐ"}},
	{code: "om", name: "Oromo", alternates: []string{"Afaan Oromoo"}},
	{code: "or", name: "Oriya", alternates: []string{"ଓଡ଼ିଆ"}},
	{code: "os", name: "ossetian", alternates: []string{"Ossetic", "ирон æвзаг"}},
	{code: "pa", name: "Eastern Punjabi", alternates: []string{"ਪੰਜਾਬੀ"}},
	{code: "pi", name: "Pali", alternates: []string{"Pāli", "पाऴि"}},
	{code: "pl", name: "Polish", alternates: []string{"język polski", "polszczyzna"}},
	{code: "ps", name: "Pashto", alternates: []string{"Pushto", "پښتو"}},
	{code: "pt", name: "Portuguese", alternates: []string{"Português"}},
	{code: "qu", name: "Quechua", alternates: []string{"Runa Simi", "Kichwa"}},
	{code: "rm", name: "Romansh", alternates: []string{"rumantsch grischun"}},
	{code: "rn", name: "Kirundi", alternates: []string{"Ikirundi"}},
	{code: "ro", name: "Romanian", alternates: []string{"Română"}},
	{code: "ru", name: "Russian", alternates: []string{"Русский"}},
	{code: "rw", name: "Kinyarwanda", alternates: []string{"Ikinyarwanda"}},
	{code: "sa", name: "Sanskrit", alternates: []string{"Saṁskṛta", "संस्कृतम्"}},
	{code: "sc", name: "Sardinian", alternates: []string{"sardu"}},
	{code: "sd", name: "Sindhi", alternates: []string{"सिन्धी", "سنڌي، سندھی"}},
	{code: "se", name: "Northern Sami", alternates: []string{"Davvisámegiella"}},
	{code: "sg", name: "Sango", alternates: []string{"yângâ tî sängö"}},
	{code: "si", name: "Sinhalese", alternates: []string{"Sinhala", "සිංහල"}},
	{code: "sk", name: "Slovak", alternates: []string{"slovenčina", "slovenský jazyk"}},
	{code: "sl", name: "Slovene", alternates: []string{"slovenski jezik", "slovenščina"}},
	{code: "sm", name: "Samoan", alternates: []string{"gagana fa'a Samoa"}},
	{code: "sn", name: "Shona", alternates: []string{"chiShona"}},
	{code: "so", name: "Somali", alternates: []string{"Soomaaliga", "af Soomaali"}},
	{code: "sq", name: "Albanian", alternates: []string{"Shqip"}},
	{code: "sr", name: "Serbian", alternates: []string{"српски језик"}},
	{code: "ss", name: "Swati", alternates: []string{"SiSwati"}},
	{code: "st", name: "Southern Sotho", alternates: []string{"Sesotho"}},
	{code: "su", name: "Sundanese", alternates: []string{"Basa Sunda"}},
	{code: "sv", name: "Swedish", alternates: []string{"svenska"}},
	{code: "sw", name: "Swahili", alternates: []string{"Kiswahili"}},
	{code: "ta", name: "Tamil", alternates: []string{"தமிழ்"}},
	{code: "te", name: "Telugu", alternates: []string{"తెలుగు"}},
	{code: "tg", name: "Tajik", alternates: []string{"тоҷикӣ", "toçikī", "تاجیکی"}},
	{code: "th", name: "Thai", alternates: []string{"ไทย"}},
	{code: "ti", name: "Tigrinya", alternates: []string{"ትግርኛ"}},
	{code: "tk", name: "Turkmen", alternates: []string{"Türkmen", "Түркмен"}},
	{code: "tl", name: "Tagalog", alternates: []string{"Wikang Tagalog"}},
	{code: "tn", name: "Tswana", alternates: []string{"Setswana"}},
	{code: "to", name: "Tonga", alternates: []string{"Tonga Islands", "faka Tonga"}},
	{code: "tr", name: "Turkish", alternates: []string{"Türkçe"}},
	{code: "ts", name: "Tsonga", alternates: []string{"Xitsonga"}},
	{code: "tt", name: "Tatar", alternates: []string{"татар теле", "tatar tele"}},
	{code: "tw", name: "Twi"},
	{code: "ty", name: "Tahitian", alternates: []string{"Reo Tahiti"}},
	{code: "ug", name: "Uyghur", alternates: []string{"ئۇيغۇرچە", "Uyghurche"}},
	{code: "uk", name: "Ukrainian", alternates: []string{"Українська"}},
	{code: "ur", name: "Urdu", alternates: []string{"اردو"}},
	{code: "uz", name: "Uzbek", alternates: []string{"Oʻzbek", "Ўзбек", "أۇزبېك"}},
	{code: "ve", name: "Venda", alternates: []string{"Tshivenḓa"}},
	{code: "vi", name: "Vietnamese", alternates: []string{"Tiếng Việt"}},
	{code: "vo", name: "Volapük"},
	{code: "wa", name: "Walloon", alternates: []string{"walon"}},
	{code: "wo", name: "Wolof", alternates: []string{"Wollof"}},
	{code: "xh", name: "Xhosa", alternates: []string{"isiXhosa"}},
	{code: "yi", name: "Yiddish", alternates: []string{"ייִדיש"}},
	{code: "yo", name: "Yoruba", alternates: []string{"Yorùbá"}},
	{code: "za", name: "Zhuang", alternates: []string{"Chuang", "Saɯ cueŋƅ", "Saw cuengh"}},
	{code: "zh", name: "Chinese", alternates: []string{"中文", "汉语", "漢語"}},
	{code: "zu", name: "Zulu", alternates: []string{"isiZulu"}},
}

var byCode = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, e := range catalog {
		m[e.code] = i
	}
	return m
}()
