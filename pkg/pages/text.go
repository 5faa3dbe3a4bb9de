package pages

// Segment is a run of page copy. Highlighted runs get the marker style and
// runs with a URL become external links.
type Segment struct {
	Text      string
	Highlight bool
	URL       string
}

var (
	AboutTitle   = "Few things about me"
	StackTitle   = "Languages and Frameworks I mostly use"
	JourneyTitle = "My journey till now"
	ViewProjects = "Checkout my projects"

	AboutIntro = [][]Segment{
		{
			{Text: "Nice to meet you. I’m Nam Nguyen Dinh, currently based in vibrant Ho Chi Minh City. I hold a degree from "},
			{Text: "Ho Chi Minh City University of Technology - HCMUT", Highlight: true},
			{Text: " and am deeply passionate about "},
			{Text: "Frontend Development", Highlight: true},
			{Text: ". I thoroughly enjoy learning new technologies and crafting stunning websites and web applications."},
		},
		{
			{Text: "In my role as a Frontend Engineer, I specialize in using "},
			{Text: "ReactJS", Highlight: true},
			{Text: " with "},
			{Text: "Next.js", Highlight: true},
			{Text: " framework, "},
			{Text: "TypeScript", Highlight: true},
			{Text: ", "},
			{Text: "SCSS", Highlight: true},
			{Text: " and various other web development tools."},
		},
		{
			{Text: "Additionally, I’m also engaged in a collaborative project with friends called "},
			{Text: "Problem Randomizer", Highlight: true, URL: "https://problem-randomizer.vercel.app/randomizer"},
			{Text: ". This platform provides an open space where you can create and publish problem sets, and test your programming skills with various coding problems from Codeforces, AtCoder, etc."},
		},
	}

	StackExtras = []Segment{
		{Text: "Additionally, I utilize a range of supplementary technologies for development, such as "},
		{Text: "SCSS", Highlight: true},
		{Text: ", "},
		{Text: "Tailwind CSS", Highlight: true, URL: "https://tailwindcss.com/"},
		{Text: ", "},
		{Text: "MUI", Highlight: true, URL: "https://mui.com/"},
		{Text: " and "},
		{Text: "SWR", Highlight: true, URL: "https://swr.vercel.app/"},
		{Text: ", etc."},
	}

	ProjectsIntro = `A few things I have built, on my own and with friends.`

	ContactIntro = `Whether it is a role, a project or just a hello, my inbox is open.`
)
