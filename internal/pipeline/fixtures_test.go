package pipeline

// wrap places body inside the detail content node of a full page.
func wrap(body string) string {
	return `<html><head><title>Archives of Nethys</title></head><body>` +
		`<div id="menu"><b>HP</b> 1<br></div>` +
		`<span id="ctl00_MainContent_DetailedOutput">` + body + `</span></body></html>`
}

// goblinPage is a complete creature page.
var goblinPage = wrap(`<h1 class="title"><a href="Monsters.aspx?ID=7">Goblin Warrior</a><span style="margin-left:auto">Creature -1</span></h1>
<span class="traitalignment"><a>CE</a></span><span class="traitsize"><a>Small</a></span><span class="trait" title="Creatures of the goblin ancestry."><a>Goblin</a></span><span class="trait"><a>Humanoid</a></span><br>
<b>Source</b> <a href="https://paizo.com/products/btq01y0k" class="external-link"><i>Bestiary pg. 180</i></a><br>
<b>Perception</b> +2; darkvision<br>
<b>Languages</b> Common, Goblin<br>
<b>Skills</b> Acrobatics +5, Athletics +2, Stealth +5<br>
<b>Str</b> +0, <b>Dex</b> +3, <b>Con</b> +1, <b>Int</b> +0, <b>Wis</b> -1, <b>Cha</b> +1<br>
<b>Items</b> <a>dogslicer</a>, <a>leather armor</a><br>
<hr>
<b>AC</b> 16; <b>Fort</b> +5, <b>Ref</b> +7, <b>Will</b> +3<br>
<b>HP</b> 6<br>
<b>Ferocity</b> <img alt="Reaction" class="actiondark"> <b>Trigger</b> The goblin is reduced to 0 HP; <b>Effect</b> The goblin avoids being knocked out.<br>
<hr>
<b>Speed</b> 25 feet<br>
<span class="hanging-indent"><b>Melee</b> <img alt="Single Action" class="actiondark"> dogslicer +7 (<a>agile</a>, <a>finesse</a>), <b>Damage</b> 1d6 slashing</span><br>
<b>Goblin Scuttle</b> <img alt="Reaction" class="actiondark"> <b>Trigger</b> A goblin ally ends a move action adjacent to the warrior; <b>Effect</b> The goblin warrior Steps.<br>
<h2 class="title">Goblin Warriors</h2>
Goblins love fire.`)

// headlessPage is a creature page whose hit points line is missing.
var headlessPage = wrap(`<h1 class="title"><a>Broken Thing</a><span>Creature 3</span></h1>
<b>Source</b> <a href="https://paizo.com/products/btq01y0k" class="external-link"><i>Bestiary pg. 12</i></a><br>
<b>Perception</b> +9<br>
<b>Str</b> +4, <b>Dex</b> +1, <b>Con</b> +3, <b>Int</b> -4, <b>Wis</b> +0, <b>Cha</b> -2<br>
<hr>
<b>AC</b> 19; <b>Fort</b> +12, <b>Ref</b> +8, <b>Will</b> +6<br>
<hr>
<b>Speed</b> 30 feet`)

// firePage is a trait page with a description.
var firePage = wrap(`<h1 class="title">Fire</h1>
<b>Source</b> <a href="https://paizo.com/products/btq01y0k" class="external-link"><i>Core Rulebook pg. 631</i></a><br>
Effects with the fire trait deal fire damage.
<h2 class="title">Spells</h2>`)

// dwarfPage is an ancestry page.
var dwarfPage = wrap(`<h1 class="title"><a>Dwarf</a></h1>
<span class="trait"><a>Dwarf</a></span><span class="trait"><a>Humanoid</a></span><br>
<b>Source</b> <a href="https://paizo.com/products/btq01y0k" class="external-link"><i>Core Rulebook pg. 36</i></a><br>
<i>Dwarves have a well-earned reputation.</i><br>
<h2 class="title">Hit Points</h2>10<br>
<h2 class="title">Size</h2>Medium<br>
<h2 class="title">Speed</h2>20 feet<br>
<h2 class="title">Darkvision</h2>You can see in darkness.<br>
<h2 class="title">Dwarf Heritages</h2>
<table><tr><th>Heritage</th><th>Benefit</th></tr><tr><td>Ancient-Blooded</td><td>Resist magic</td></tr></table>`)
