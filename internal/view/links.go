package view

// Link is an external link shown below the listing.
type Link struct {
	Name string
	URL  string
	Icon string
}

const PersonalLinksHeading = "Connect with Me"

var PersonalLinks = []Link{
	{Name: "Portfolio", URL: "https://guilhermebranco.com.br", Icon: "globe"},
	{Name: "Old Portfolio", URL: "https://zerocool.com.br", Icon: "globe"},
	{Name: "GitHub Bot", URL: "https://bot.straccini.com", Icon: "github"},
	{Name: "Personal Blog", URL: "https://blog.guilhermebranco.com.br", Icon: "wordpress"},
	{Name: "Main GitHub", URL: "https://github.com/guibranco", Icon: "github"},
	{Name: "POCs GitHub", URL: "https://github.com/GuilhermeStracini", Icon: "github"},
	{Name: "LinkedIn", URL: "https://www.linkedin.com/in/guilhermestracini/", Icon: "linkedin"},
	{Name: "Instagram", URL: "https://www.instagram.com/gui.stracini/", Icon: "instagram"},
}

// FooterInfo credits the author of the page.
type FooterInfo struct {
	Developer    string
	DeveloperURL string
	PhotoURL     string
	GitHubURL    string
}

var Footer = FooterInfo{
	Developer:    "Guilherme Branco Stracini",
	DeveloperURL: "https://guibranco.github.io",
	PhotoURL:     "https://guibranco.github.io/photo.png",
	GitHubURL:    "https://github.com/GuilhermeStracini",
}
