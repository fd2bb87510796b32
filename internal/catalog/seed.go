package catalog

import "uihub-backend-go/internal/models"

// Seed is the bundled component set, always merged into the catalog
// regardless of remote store state. Ids in this set are reserved: a remote
// record sharing an id shadows the seed entry.
var Seed = []models.Component{
	{
		ID:          "1",
		Name:        "Modern SaaS Header",
		Description: "A responsive header with a sticky blurred background and mobile menu.",
		Category:    "Headers",
		Technology:  []string{"React", "Tailwind CSS"},
		Tags:        []string{"sticky", "blur", "minimal"},
		ImageURL:    "https://picsum.photos/seed/header1/800/200",
		Author:      "Admin",
		DateAdded:   "2024-03-20",
		Code: models.CodeBundle{
			React: ptr(`export function Header() {
  return (
    <header className="sticky top-0 z-50 w-full border-b bg-background/95 backdrop-blur">
      <div className="container flex h-16 items-center">
        <div className="mr-4 flex">
          <a className="mr-6 flex items-center space-x-2" href="/">
            <span className="font-bold">UI HUB</span>
          </a>
        </div>
      </div>
    </header>
  );
}`),
		},
	},
	{
		ID:          "2",
		Name:        "Auth Multi-step Form",
		Description: "Clean authentication form with validation and progress indicator.",
		Category:    "Forms",
		Technology:  []string{"React", "Tailwind CSS"},
		Tags:        []string{"auth", "validation", "steps"},
		ImageURL:    "https://picsum.photos/seed/form1/600/800",
		Author:      "DesignTeam",
		DateAdded:   "2024-03-21",
		Code: models.CodeBundle{
			HTML: ptr(`<form class="space-y-4">
  <input type="email" class="w-full px-4 py-2 border rounded" placeholder="Email" />
  <button class="bg-blue-600 text-white px-4 py-2 rounded">Next</button>
</form>`),
		},
	},
	{
		ID:          "3",
		Name:        "Neo-brutalist Pricing",
		Description: "High contrast pricing tables for creative agencies.",
		Category:    "Pricing",
		Technology:  []string{"Tailwind CSS"},
		Tags:        []string{"neo-brutalism", "dark-mode"},
		ImageURL:    "https://picsum.photos/seed/price1/600/500",
		Author:      "Artur",
		DateAdded:   "2024-03-19",
		Code: models.CodeBundle{
			HTML: ptr(`<div class="border-4 border-black p-8 shadow-[8px_8px_0_0_#000]">
  <h3 class="text-2xl font-black">Pro Plan</h3>
  <p class="text-4xl font-black mt-4">$49/mo</p>
</div>`),
		},
	},
	{
		ID:          "4",
		Name:        "Glassmorphism Card",
		Description: "Modern card style with heavy background blur and gradient borders.",
		Category:    "Cards",
		Technology:  []string{"Plain CSS", "Tailwind CSS"},
		Tags:        []string{"glassmorphism", "modern"},
		ImageURL:    "https://picsum.photos/seed/card1/600/400",
		Author:      "Elena",
		DateAdded:   "2024-03-22",
		Code: models.CodeBundle{
			HTML: ptr(`<div class="bg-white/10 backdrop-blur-md border border-white/20 p-6 rounded-2xl">
  <h4 class="text-white font-bold">Glass Card</h4>
</div>`),
		},
	},
	{
		ID:          "5",
		Name:        "Geometric Hero",
		Description: "Abstract hero section with animated blobs and call to action.",
		Category:    "Hero Sections",
		Technology:  []string{"Tailwind CSS"},
		Tags:        []string{"hero", "animation"},
		ImageURL:    "https://picsum.photos/seed/hero1/800/600",
		Author:      "Admin",
		DateAdded:   "2024-03-23",
		Code: models.CodeBundle{
			HTML: ptr(`<section class="relative overflow-hidden py-24">
  <div class="absolute -top-24 -left-24 w-96 h-96 bg-blue-400 rounded-full blur-3xl opacity-20"></div>
  <div class="relative container mx-auto text-center">
    <h1 class="text-6xl font-extrabold">Build Faster</h1>
  </div>
</section>`),
		},
	},
	{
		ID:          "6",
		Name:        "Minimalist Footer",
		Description: "A clean footer with simple navigation and social links.",
		Category:    "Footers",
		Technology:  []string{"Tailwind CSS"},
		Tags:        []string{"footer", "minimal"},
		ImageURL:    "https://picsum.photos/seed/footer1/800/150",
		Author:      "Admin",
		DateAdded:   "2024-03-24",
		Code: models.CodeBundle{
			HTML: ptr(`<footer class="border-t py-8">
  <div class="container mx-auto flex justify-between">
    <p>&copy; 2024 UI Hub</p>
    <div class="flex gap-4">
      <a href="#">Twitter</a>
      <a href="#">GitHub</a>
    </div>
  </div>
</footer>`),
		},
	},
}

func ptr(value string) *string {
	return &value
}
