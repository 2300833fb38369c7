package cloning

// Placeholders written into cloned markup. The keys match the render context
// built by types.BuildRenderContext.
const (
	PlaceholderName        = "{{name}}"
	PlaceholderRole        = "{{role}}"
	PlaceholderBio         = "{{bio}}"
	PlaceholderEmail       = "{{email}}"
	PlaceholderGitHubURL   = "{{githubUrl}}"
	PlaceholderLinkedInURL = "{{linkedinUrl}}"

	SkillsLoopOpen = "{{#each (split skills)}}"
	SkillItem      = "{{this}}"

	ProjectsLoopOpen   = "{{#each projects}}"
	ProjectTitle       = "{{this.title}}"
	ProjectDescription = "{{this.description}}"
	ProjectLink        = "{{this.link}}"

	LoopClose = "{{/each}}"
)
