package runes

// builtins is the core rune set, in documentation order. Container runes
// come with their item runes so that tags synthesized during child
// processing (accordion-item, timeline-entry, and the rest) resolve
// through the same registry.
var builtins = []*Rune{
	hintRune,
	accordionRune,
	accordionItemRune,
	tabsRune,
	tabRune,
	codegroupRune,
	stepsRune,
	stepRune,
	ctaRune,
	featureRune,
	definitionRune,
	gridRune,
	recipeRune,
	timelineRune,
	timelineEntryRune,
	changelogRune,
	changelogReleaseRune,
	factionRune,
	factionSectionRune,
	bentoRune,
	bentoCellRune,
	revealRune,
	revealStepRune,
	realmRune,
	realmSectionRune,
	characterRune,
	characterSectionRune,
	embedRune,
	chartRune,
	iconRune,
	sandboxRune,
	musicPlaylistRune,
	musicRecordingRune,
	figureRune,
	pullquoteRune,
	detailsRune,
	conversationRune,
	conversationMessageRune,
	datatableRune,
	heroRune,
	howtoRune,
	pricingRune,
	tierRune,
	testimonialRune,
	mediatextRune,
	textblockRune,
	tocRune,
	breadcrumbRune,
	navRune,
	eventRune,
	diffRune,
	swatchRune,
}
