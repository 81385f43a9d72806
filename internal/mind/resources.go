package mind

import "strings"

// Study resource catalog. Lookup is first-match-wins over an ordered
// alias table, so more specific aliases must come before looser ones
// ("ap calculus ab" before "ap calc", "sat" last but one).

type resourceEntry struct {
	aliases []string
	reply   string
}

var resourceCatalog = []resourceEntry{
	{[]string{"ap art history", "apah", "ap ah"}, `**🎨 AP Art History Resources:**
• Khan Academy: <https://www.khanacademy.org/humanities/ap-art-history>
• Study Sheets: <https://knowt.com/exams/AP/AP-Art-History>
• Smarthistory (recommended): <https://smarthistory.org/>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap biology", "ap bio"}, `**🧬 AP Biology Resources:**
• Khan Academy: <https://www.khanacademy.org/science/ap-biology>
• Study Sheets: <https://knowt.com/exams/AP/AP-Biology>
• Amoeba Sisters: <https://www.youtube.com/@AmoebaSister>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap precalculus", "ap precalc"}, `**📐 AP Precalculus Resources:**
• Khan Academy: <https://www.khanacademy.org/math/precalculus>
• Study Sheets: <https://knowt.com/exams/AP/AP-Precalculus>
• Organic Chemistry Tutor: <https://www.youtube.com/@TheOrganicChemistryTutor>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap calculus ab", "ap calc ab", "calc ab"}, `**📐 AP Calculus AB Resources:**
• Khan Academy: <https://www.khanacademy.org/math/ap-calculus-ab>
• Study Sheets: <https://knowt.com/exams/AP/AP-Calculus-AB>
• Organic Chemistry Tutor: <https://www.youtube.com/@TheOrganicChemistryTutor>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap calculus bc", "ap calc bc", "calc bc"}, `**📐 AP Calculus BC Resources:**
• Khan Academy: <https://www.khanacademy.org/math/ap-calculus-bc>
• Study Sheets: <https://knowt.com/exams/AP/AP-Calculus-BC>
• Organic Chemistry Tutor: <https://www.youtube.com/@TheOrganicChemistryTutor>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap chemistry", "ap chem"}, `**🧪 AP Chemistry Resources:**
• Khan Academy: <https://www.khanacademy.org/science/ap-chemistry>
• Study Sheets: <https://knowt.com/exams/AP/AP-Chemistry>
• Organic Chemistry Tutor: <https://www.youtube.com/@TheOrganicChemistryTutor>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap chinese"}, `**🇨🇳 AP Chinese Resources:**
• Study Sheets: <https://knowt.com/exams/AP/AP-Chinese-Language-and-Culture>
• Grammar: <https://resources.allsetlearning.com/chinese/grammar>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap comparative government", "ap comp gov"}, `**🏛️ AP Comparative Government Resources:**
• Study Sheets: <https://knowt.com/exams/AP/AP-Comparative-Government-and-Politics>
• Heimler's History: <https://www.youtube.com/@HeimlerHistory>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap computer science", "ap cs", "apcsa", "apcs"}, `**</> AP Computer Science Resources:**
• Study Sheets: <https://knowt.com/exams/AP/AP-Computer-Science-Principles>
• Free Harvard course: <https://cs50.harvard.edu/>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap english literature", "ap lit", "ap english lit"}, `**📚 AP English Literature Resources:**
• Study Sheets: <https://knowt.com/exams/AP/AP-English-Literature-and-Composition>
• Crash Course: <https://www.youtube.com/crashcourse>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap english language", "ap lang", "ap english lang"}, `**📚 AP English Language Resources:**
• Khan Academy: <https://www.khanacademy.org/ela>
• Study Sheets: <https://knowt.com/exams/AP/AP-English-Language-and-Composition>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap environmental science", "apes"}, `**🌱 AP Environmental Science Resources:**
• Khan Academy: <https://www.khanacademy.org/science/ap-biology>
• Study Sheets: <https://knowt.com/exams/AP/AP-Environmental-Science>
• Crash Course: <https://www.youtube.com/crashcourse>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap european history", "ap euro"}, `**🇪🇺 AP European History Resources:**
• Khan Academy: <https://www.khanacademy.org/humanities/world-history>
• Study Sheets: <https://knowt.com/exams/AP/AP-European-History>
• Heimler's History: <https://www.youtube.com/@HeimlerHistory>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap french"}, `**🇫🇷 AP French Resources:**
• Study Sheets: <https://knowt.com/exams/AP/AP-French-Language-and-Culture>
• French Articles (Recommended): <https://savoirs.rfi.fr/fr/apprendre-enseigner>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap human geography", "ap hug", "aphug"}, `**🌎 AP Human Geography Resources:**
• Khan Academy: <https://www.khanacademy.org/>
• Study Sheets: <https://knowt.com/exams/AP/AP-Human-Geography>
• Crash Course Geography: <https://www.youtube.com/crashcourse>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap physics 1", "ap physics one"}, `**🚀 AP Physics 1 Resources:**
• Khan Academy: <https://www.khanacademy.org/science/ap-physics-1>
• Study Sheets: <https://knowt.com/exams/AP/AP-Physics-1_Algebra.Based>
• Free MIT Courses: <https://ocw.mit.edu/>
• The Organic Chemistry Tutor: <https://www.youtube.com/@TheOrganicChemistryTutor>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap physics c: mechanics", "ap physics c mechanics", "ap physics c: mech", "ap physics c mech", "ap physics c"}, `**🚀 AP Physics C: Mechanics Resources:**
• Khan Academy: <https://www.khanacademy.org/science/ap-physics-c-mechanics>
• Free MIT Courses: <https://ocw.mit.edu/>
• Study Sheets: <https://knowt.com/exams/AP/AP-Physics-C_Mechanics>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap psychology", "ap psych"}, `**🧠 AP Psychology Resources:**
• Khan Academy: <https://www.khanacademy.org/science/ap-psychology>
• Study Sheets: <https://knowt.com/exams/AP/AP-Psychology>
• Crash Course: <https://www.youtube.com/crashcourse>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap spanish language", "ap spanish"}, `**🇪🇸 AP Spanish Language Resources:**
• Study Sheets: <https://knowt.com/exams/AP/AP-Spanish-Language-and-Culture>
• SpanishDict: <https://www.spanishdict.com/>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap statistics", "ap stats", "ap stat"}, `**📊 AP Statistics Resources:**
• Khan Academy: <https://www.khanacademy.org/math/ap-statistics>
• Study Sheets: <https://knowt.com/exams/AP/AP-Statistics>
• Crash Course: <https://www.youtube.com/crashcourse>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap studio art"}, `**🎨 AP Studio Art Resources:**
• Student Art Guide: <https://www.studentartguide.com/>
• Ctrl+Paint (digital art): <https://www.ctrlpaint.com/>
• Proko (hand art): <https://www.proko.com/>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap us government", "ap gov", "ap us gov"}, `**🏛️ AP US Government Resources:**
• Khan Academy: <https://www.khanacademy.org/humanities/us-government>
• Study Sheets: <https://knowt.com/exams/AP/AP-United-States-Government-and-Politics>
• Heimler's History: <https://www.youtube.com/@HeimlerHistory>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap us history", "apush"}, `**🇺🇸 AP US History Resources:**
• Khan Academy: <https://www.khanacademy.org/humanities/us-history>
• Study Sheets: <https://knowt.com/exams/AP/AP-United-States-History>
• Heimler's History: <https://www.youtube.com/@HeimlerHistory>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"ap world history", "ap world"}, `**🌍 AP World History Resources:**
• Khan Academy: <https://www.khanacademy.org/humanities/world-history>
• Heimler's History: <https://www.youtube.com/@HeimlerHistory>
• AP Classroom: <https://apstudents.collegeboard.org/>`},

	{[]string{"sat"}, `**📚 SAT Resources:**
• CrackSAT: <https://www.cracksat.net/index.html>
• SAT Question Bank: <https://satsuitequestionbank.collegeboard.org/>
• Practice Tests: <https://bluebook.collegeboard.org/students/download-bluebook>
• BHS offers SAT tutoring; ask your counselor!`},

	{[]string{"act"}, `**📚 ACT Resources:**
• CrackAB: <https://www.crackab.com/>
• Practice Tests: <https://www.act.org/content/act/en/products-and-services/the-act/test-preparation.html>`},
}

const helpText = `**📚 abg tutor's study resources**

**🎨 Art**
` + "`!ap art history` • `!ap studio art`" + `

**📖 English**
` + "`!ap english language` • `!ap english literature`" + `

**🔬 Science**
` + "`!ap biology` • `!ap chemistry` • `!ap environmental science`\n`!ap physics 1` • `!ap physics c: mechanics`" + `

**📐 Math**
` + "`!ap precalculus` • `!ap calculus ab` • `!ap calculus bc` • `!ap statistics`" + `

**🌐 Languages**
` + "`!ap chinese` • `!ap french` • `!ap spanish language`" + `

**📝 Standardized Tests**
` + "`!sat` • `!act`" + `

**Functions:**
Type ` + "`!help`" + ` or mention my name (abg tutor) to see what I can do!
Type ` + "`goodbye`" + ` to stop.

Type any command above and I'll send you resources! 💕`

const unknownCommandReply = "i don't understand that fr 😭 type `!help` to see what i can do!"

// LookupResource resolves a resource request against the catalog.
func LookupResource(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, e := range resourceCatalog {
		for _, a := range e.aliases {
			if strings.Contains(lowered, a) {
				return e.reply, true
			}
		}
	}
	return "", false
}
