package render

// labels is the minimal UI string table; the simulation core only hands
// over a language tag. Unknown tags fall back to English.
var labels = map[string]map[string]string{
	"en": {
		"title":     "N O V A   S T R I K E",
		"menu_hint": "enter: start   f2: language   q: quit",
		"paused":    "P A U S E D",
		"game_over": "G A M E   O V E R",
		"victory":   "V I C T O R Y",
		"score":     "score",
		"level":     "level",
		"lives":     "lives",
		"health":    "hull",
	},
	"fi": {
		"title":     "N O V A   S T R I K E",
		"menu_hint": "enter: aloita   f2: kieli   q: lopeta",
		"paused":    "T A U K O",
		"game_over": "P E L I   O H I",
		"victory":   "V O I T T O",
		"score":     "pisteet",
		"level":     "taso",
		"lives":     "elämät",
		"health":    "runko",
	},
	"de": {
		"title":     "N O V A   S T R I K E",
		"menu_hint": "enter: start   f2: sprache   q: beenden",
		"paused":    "P A U S E",
		"game_over": "S P I E L   V O R B E I",
		"victory":   "S I E G",
		"score":     "punkte",
		"level":     "stufe",
		"lives":     "leben",
		"health":    "hülle",
	},
}

func label(lang, key string) string {
	if table, ok := labels[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	return labels["en"][key]
}
