package pattern

// Context-dependent star specs. A star is a single-branch pattern whose
// applicability comes from a contextual reference point (the Day-Master stem
// or the Year Branch); the reference tables live in stars.go.

type starEntry struct {
	category Category
	zh       string
	pinyin   string
	badge    Badge
	domains  []Domain
	meanings map[string]string
	positive bool
	desc     string
}

var starEntries = []starEntry{
	{
		category: CategoryVoidStar,
		zh:       "空亡", pinyin: "Kong Wang",
		badge:   BadgeContextual,
		domains: []Domain{DomainCareer, DomainWealth},
		meanings: map[string]string{
			"year":  "ancestral support feels hollow or absent",
			"month": "career gains evaporate before they settle",
			"day":   "the self doubts what it has already earned",
			"hour":  "plans for later years need repeated rebuilding",
		},
		desc: "Emptiness star draining substance from whatever palace it occupies",
	},
	{
		category: CategoryNoblemanStar,
		zh:       "天乙贵人", pinyin: "Tian Yi Gui Ren",
		badge:   BadgeAuspicious,
		domains: []Domain{DomainCareer, DomainLegal},
		meanings: map[string]string{
			"year":  "helpful elders smooth the early path",
			"month": "mentors appear at career turning points",
			"day":   "the spouse or close allies avert misfortune",
			"hour":  "juniors and late-life friends bring rescue",
		},
		positive: true,
		desc:     "Heavenly helper star turning adversity toward aid",
	},
	{
		category: CategoryRomanceStar,
		zh:       "桃花", pinyin: "Tao Hua",
		badge:   BadgeContextual,
		domains: []Domain{DomainRelationship},
		meanings: map[string]string{
			"year":  "charm inherited from the family line",
			"month": "attraction woven through working life",
			"day":   "magnetism centered on the marriage palace",
			"hour":  "late or hidden romance",
		},
		positive: true,
		desc:     "Peach-blossom star of attraction and entanglement",
	},
	{
		category: CategoryTravelStar,
		zh:       "驿马", pinyin: "Yi Ma",
		badge:   BadgeContextual,
		domains: []Domain{DomainTravel, DomainCareer},
		meanings: map[string]string{
			"year":  "a family history of migration",
			"month": "career advanced through movement",
			"day":   "restlessness in the self and the home",
			"hour":  "journeys multiplying in later years",
		},
		positive: true,
		desc:     "Post-horse star of movement, relocation, and change",
	},
	{
		category: CategoryBladeStar,
		zh:       "羊刃", pinyin: "Yang Ren",
		badge:   BadgeInauspicious,
		domains: []Domain{DomainHealth, DomainLegal},
		meanings: map[string]string{
			"year":  "sharp ruptures in the family story",
			"month": "cutthroat conditions around career",
			"day":   "intensity that can wound the self or spouse",
			"hour":  "risk of injury carried into later years",
		},
		desc: "Goat-blade star of excessive force at the Day Master's peak",
	},
	{
		category: CategoryProsperityStar,
		zh:       "禄神", pinyin: "Lu Shen",
		badge:   BadgeAuspicious,
		domains: []Domain{DomainWealth, DomainCareer},
		meanings: map[string]string{
			"year":  "inherited means and a provisioned start",
			"month": "salary and station grow steadily",
			"day":   "the self stands on its own earnings",
			"hour":  "provision extends into old age",
		},
		positive: true,
		desc:     "Emolument star anchoring the Day Master's livelihood",
	},
	{
		category: CategoryCanopyStar,
		zh:       "华盖", pinyin: "Hua Gai",
		badge:   BadgeContextual,
		domains: []Domain{DomainEducation, DomainCareer},
		meanings: map[string]string{
			"year":  "a scholarly or devout family thread",
			"month": "solitary mastery within the profession",
			"day":   "an inward, contemplative self",
			"hour":  "late-life study and retreat",
		},
		positive: true,
		desc:     "Imperial-canopy star of solitary brilliance and study",
	},
	{
		category: CategoryLonelyStar,
		zh:       "孤辰", pinyin: "Gu Chen",
		badge:   BadgeInauspicious,
		domains:  []Domain{DomainRelationship, DomainFamily},
		meanings: map[string]string{
			"year":  "distance from the wider clan",
			"month": "working years spent apart from kin",
			"day":   "a marriage palace inclined to solitude",
			"hour":  "later years at risk of isolation",
		},
		desc: "Lonesome star separating the chart holder from companionship",
	},
	{
		category: CategoryWidowStar,
		zh:       "寡宿", pinyin: "Gua Su",
		badge:   BadgeInauspicious,
		domains:  []Domain{DomainRelationship, DomainFamily},
		meanings: map[string]string{
			"year":  "early loss or absence in the family line",
			"month": "withdrawal during the working years",
			"day":   "strain and silence in the marriage palace",
			"hour":  "a solitary close to the life arc",
		},
		desc: "Widowhood star weighing on the bonds of the household",
	},
}

func loadStars(r *Registry) error {
	for _, e := range starEntries {
		spec := &Spec{
			ID:                e.category.TypeToken(),
			Category:          e.category,
			Priority:          70,
			NameZh:            e.zh,
			NamePinyin:        e.pinyin,
			MinParticipants:   1,
			MaxParticipants:   1,
			BaseScoreCombined: 3.5,
			Badge:             e.badge,
			Domains:           e.domains,
			PillarMeanings:    e.meanings,
			Events:            starEvents(e),
			Description:       e.desc,
			Source:            "Xing Ping Hui Hai",
		}
		if err := r.Register(spec); err != nil {
			return err
		}
	}
	return nil
}

func starEvents(e starEntry) *EventMapping {
	mapping := &EventMapping{PrimaryDomains: e.domains}
	if e.positive {
		mapping.Positive = positiveEvents(e.domains)
		mapping.Sentiments = sentiments(e.domains, "positive")
	} else {
		mapping.Negative = negativeEvents(e.domains)
		mapping.Sentiments = sentiments(e.domains, "negative")
	}
	return mapping
}
