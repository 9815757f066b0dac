package message

import "go-outreach-automation/internal/models"

// Placeholders: {Name} prospect, {Company}, {Role}, {Sender} identity full name.
// Start and Send Note carry the identity's own voice; the remaining stages are
// shared and pick up the identity through the {Sender} signature line.

var startTemplates = map[string]string{
	"vishnu": `Hi {Name},

Thank you for connecting! I came across your profile and was impressed by the work at {Company}.

I specialize in data analytics, Python, SQL, and automation, and I’m currently looking for opportunities where I can contribute my {Role} skills.

I’d love to know if there are any openings or upcoming projects where I could be a good fit.`,

	"sakshi": `Hi {Name},

Thank you for accepting my connection! I noticed the amazing work being done at {Company}.

I am experienced in full-stack development, including React, Node.js, and TypeScript, and I’m eager to contribute my {Role} skills.

Are there any roles or projects where I could be helpful?`,

	"harsha": `Hello {Name},

Thank you for connecting! I am impressed by the initiatives at {Company}.

I specialize in data analytics, market research, and project management, and I’d love to contribute my {Role} skills to your team.

Could you let me know if there are any roles or opportunities I can assist with?`,

	"sai": `Hi {Name},

Thanks for connecting! I saw the work at {Company} and found it very inspiring.

I am a versatile software engineer experienced in full-stack and mobile development, and I’d love to contribute my {Role} skills to your team.

Are there any openings or upcoming projects that might be a good fit?`,

	"bhanu": `Hello {Name},

Thank you for connecting! I am impressed by {Company}’s tech initiatives.

My expertise lies in backend and full-stack development, and I am eager to apply my {Role} skills to contribute effectively.

Would you be able to guide me on any opportunities where I could add value?`,
}

var sendNoteTemplates = map[string]string{
	"vishnu": `Hi {Name}, I came across your profile while researching {Company} and would love to connect. I work in data analytics and automation and am exploring {Role} opportunities.`,

	"sakshi": `Hi {Name}, I’d love to connect! I’m a full-stack developer following the work at {Company} and exploring {Role} opportunities.`,

	"harsha": `Hello {Name}, I’d love to connect. I work in analytics and market research and was impressed by {Company}’s initiatives while exploring {Role} roles.`,

	"sai": `Hi {Name}, I came across {Company} and found the work inspiring. I’m a software engineer exploring {Role} opportunities and would love to connect.`,

	"bhanu": `Hello {Name}, I’d love to connect! I’m a full-stack developer interested in {Company} and exploring {Role} opportunities.`,
}

var sharedTemplates = map[models.Stage]string{
	models.StageAfterReply: `Hi {Name},

Thank you so much for getting back to me! 🙏

I’d love to share my resume and explore if my experience aligns with any opportunities at {Company}. Your guidance or feedback would mean a lot!

Best regards,
{Sender}`,

	models.StageReferralRequest: `Hi {Name},

I hope you’re doing well! 🌟

I noticed a {Role} position at {Company} that matches my skills and experience perfectly. If you think I could be a fit, I would greatly appreciate your referral.

I’m really excited about the chance to contribute and grow with your team!

Best regards,
{Sender}`,

	models.StageFollowUp: `Hi {Name},

I hope all is well! Just following up on my previous message to see if you had a chance to review my profile.

I remain very interested in opportunities at {Company} and would love to contribute my {Role} skills to your team. Looking forward to your thoughts! 🙂

Best regards,
{Sender}`,
}

// defaultStart covers identities without a personalized greeting yet.
const defaultStart = `Hi {Name},

Thank you for connecting! I noticed the great work being done at {Company}.

I’m currently looking for opportunities where I can contribute my {Role} skills, and I’d love to know if there are any openings where I could be a good fit.

Best regards,
{Sender}`
