package extract

import (
	"strings"
	"testing"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
)

// creatureBody is a goblin stat block laid out the way creature pages are.
const creatureBody = `<h1 class="title"><a href="Monsters.aspx?ID=7">Goblin Warrior</a><span style="margin-left:auto">Creature -1</span></h1>
<span class="traituncommon"><a href="Traits.aspx?ID=159">Uncommon</a></span><span class="traitalignment"><a>CE</a></span><span class="traitsize"><a>Small</a></span><span class="trait" title="Creatures of the goblin ancestry."><a>Goblin</a></span><span class="trait"><a>Humanoid</a></span><br>
<b>Source</b> <a href="https://paizo.com/products/btq01y0k" target="_blank" class="external-link"><i>Bestiary pg. 180</i></a><br>
Goblin warriors are scrappy.<br>
<b>Perception</b> +2; darkvision<br>
<b>Languages</b> Common, Goblin; telepathy 30 feet<br>
<b>Skills</b> Acrobatics +5, Athletics +2 (+4 to Climb), Stealth +5<br>
<b>Str</b> +0, <b>Dex</b> +3, <b>Con</b> +1, <b>Int</b> +0, <b>Wis</b> -1, <b>Cha</b> +1<br>
<b>Items</b> <a>dogslicer</a>, <a>leather armor</a>, <a>shortbow</a> (10 arrows, 2 bolts)<br>
<b>Goblin Song</b> <img alt="Single Action" class="actiondark" src="Images/Actions/OneAction.png"> (<a>auditory</a>, <a>concentrate</a>) The goblin sings.<br>
<hr>
<b>AC</b> 16 (18 with shield raised); <b>Fort</b> +5, <b>Ref</b> +7 (+1 vs. traps), <b>Will</b> +3; +1 status to all saves vs. magic<br>
<b>HP</b> 6; Hardness 2; <b>Immunities</b> fire, sleep; <b>Weaknesses</b> cold iron 3; <b>Resistances</b> physical 5 (except adamantine, silver)<br>
<b>Ferocity</b> <img alt="Reaction" class="actiondark"> <b>Trigger</b> The goblin is reduced to 0 HP; <b>Effect</b> The goblin avoids being knocked out.<br>
<b>Light Blindness</b> The goblin is blinded in bright light.<br>
<hr>
<b>Speed</b> 25 feet, climb 10 feet<br>
<span class="hanging-indent"><b>Melee</b> <img alt="Single Action" class="actiondark"> dogslicer +7 (<a>agile</a>, <a>backstabber</a>, <a>finesse</a>), <b>Damage</b> 1d6 slashing</span><br>
<span class="hanging-indent"><b>Ranged</b> <img alt="Single Action" class="actiondark"> shortbow +6 [+1/-4] (<a>deadly d10</a>, range increment 60 feet, reload 0), <b>Damage</b> 1d6 piercing</span><br>
<b>Occult Innate Spells</b> DC 15; <b>1st</b> <a><i>sleep</i></a><br>
<b>Goblin Scuttle</b> <img alt="Reaction" class="actiondark"> <b>Trigger</b> A goblin ally ends a move action adjacent to the warrior; <b>Effect</b> The goblin warrior Steps.<br>
<b>Breath of Soot</b> <img alt="Two Actions" class="actiondark"> The goblin exhales soot.<br><b>Success</b> The target is unaffected.<br><b>Failure</b> The target is dazzled.<br>
<h2 class="title">Goblin Warriors</h2>
Goblins love fire.`

// traitBody is a trait page with a description.
const traitBody = `<h1 class="title">Fire</h1>
<b>Source</b> <a href="https://paizo.com/products/btq01y0k" target="_blank" class="external-link"><i>Core Rulebook pg. 631</i></a><br>
Effects with the fire trait deal fire damage. <a href="Rules.aspx">Fire</a> rules apply.
<h2 class="title">Spells</h2>
<span class="trait" title="Fire"><a>Burning Hands</a></span>`

// unlistedTraitBody is a trait page without a body.
const unlistedTraitBody = `<h1 class="title">Archetype</h1>
<b>Source</b> <a href="https://paizo.com/products/btq01y0k" class="external-link"><i>Core Rulebook pg. 219</i></a><br>
This trait was not listed in the source book.`

// ancestryBody is an ancestry page with statistic headings and a table.
const ancestryBody = `<h1 class="title"><a href="Ancestries.aspx?ID=1">Dwarf</a></h1>
<span class="traituncommon"><a>Uncommon</a></span><span class="trait"><a>Dwarf</a></span><span class="trait"><a>Humanoid</a></span><br>
<b>Source</b> <a href="https://paizo.com/products/btq01y0k" class="external-link"><i>Core Rulebook pg. 36</i></a><br>
<i>Dwarves have a well-earned reputation.</i><br>
<h3 class="title">You Might...</h3>Strive to uphold your honor.<br>Value tradition.
<h2 class="title">Hit Points</h2>10<br>
<h2 class="title">Size</h2>Medium<br>
<h2 class="title">Speed</h2>20 feet<br>
<h2 class="title">Ability Boosts</h2>Constitution<br>Wisdom<br>Free<br>
<h2 class="title">Ability Flaw(s)</h2>Charisma<br>
<h2 class="title">Languages</h2>Common<br>Dwarven<br>
<h2 class="title">Darkvision</h2>You can see in darkness.<br>
<h2 class="title">Clan Dagger</h2>You get one clan dagger.
<h2 class="title">Dwarf Heritages</h2>
<table><tr><th>Heritage</th><th>Benefit</th></tr><tr><td>Ancient-Blooded</td><td>Resist magic</td></tr></table>`

func page(t *testing.T, body string) markup.Cursor {
	t.Helper()
	doc := `<html><body><div id="nav"><b>HP</b> 999<br></div><span id="ctl00_MainContent_DetailedOutput">` +
		body + `</span></body></html>`
	c, err := markup.Load(strings.NewReader(doc), markup.ContentSelector)
	if err != nil {
		t.Fatalf("markup.Load() error = %v", err)
	}
	return c
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
