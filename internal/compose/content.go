package compose

// Content bundles per (identity, role). The map is total over the identity
// registry: every allowed role of every identity has exactly one bundle,
// verified by enumeration in the tests. Pitch text may reference {Company}
// and {RoleName}.

var bundles = map[string]map[string]Bundle{
	"vishnu": {
		"Data Analyst": {
			Pitch: `<p>I hold a B.Tech in Electrical Engineering from <b>IIT Bombay (2024)</b> and currently work
as a <b>Data Analytics and Automation Specialist</b> at Bintix. Over the past 1.5 years, I have:</p>

<ul>
<li>Built dashboards in Streamlit for KPI tracking and consumer insights.</li>
<li>Automated SQL + Python reporting pipelines, reducing manual effort by 80% and improving data accuracy by 30%.</li>
<li>Delivered scalable analytics solutions for clients including <b>L’Oréal, HUL, and ITC</b>.</li>
</ul>

<p>My expertise in <b>Python, SQL, and dashboarding</b> enables me to turn complex data into actionable insights,
and I am eager to bring the same impact to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Designed Streamlit KPI & Consumer Dashboards to deliver actionable insights.",
				"Automated SQL + Python pipelines, reducing manual effort and improving accuracy.",
				"Built an Innovations Tracker Dashboard to benchmark launches and spot opportunities.",
			},
			Highlights: "Python, SQL, Power BI + Streamlit dashboarding, reporting automation",
			CTA:        "I’d love the opportunity to discuss how I can contribute to {Company}’s analytics team and help drive data-driven decision making.",
		},
		"Data Scientist": {
			Pitch: `<p>I graduated from <b>IIT Bombay</b> in 2024 with a B.Tech in Electrical Engineering
and currently work as a <b>Data Analytics and Automation Specialist</b> at Bintix.
Alongside my industry experience, I completed an Advanced Machine Learning course, gaining hands-on expertise in
regression, clustering, random forests, CNNs, RNNs, LSTMs, and GANs.</p>

<p>At <b>Bintix</b>, I applied these skills to:</p>

<ul>
<li>Build an AI-powered chatbot for KPI extraction and Streamlit dashboards for consumer insights.</li>
<li>Automate insights generation from large datasets.</li>
<li>Apply ML models for trend detection and product benchmarking.</li>
</ul>

<p>My experience in Python, SQL, machine learning, and analytics has enabled global clients to improve
efficiency and accuracy, and I am eager to bring the same impact to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Applied ML for trend analysis and product benchmarking, turning raw data into strategic insights.",
				"Built an AI-powered chatbot to extract KPIs from natural language, integrating NLP with analytics.",
				"Completed an Advanced ML course, applying regression, clustering, CNNs, RNNs, LSTMs, and GANs to real-world datasets.",
			},
			Highlights: "AI/ML, Python, advanced analytics, natural language data agents",
			CTA:        "I’d welcome the chance to explore how my machine learning expertise and real-world project experience can support {Company}’s data science initiatives.",
		},
		"Data Engineer": {
			Pitch: `<p>I hold a B.Tech in Electrical Engineering from <b>IIT Bombay (2024)</b> and currently work
as a <b>Data Analytics and Automation Specialist</b> at <b>Bintix</b>. My experience includes:</p>

<ul>
<li>Designing and deploying <b>Python-based ETL pipelines</b> for large datasets.</li>
<li>Automating reporting workflows, reducing manual effort by 80%.</li>
<li>Building scalable SQL-driven data processes, improving data accuracy by 30%.</li>
</ul>

<p>I have worked with global clients such as <b>L’Oréal, HUL, and ITC</b>, ensuring data pipelines are
both reliable and insight-driven. I believe my expertise in <b>Python, SQL, and workflow automation</b>
makes me a strong fit for this opportunity.</p>`,
			Bullets: [3]string{
				"Scaled data management by designing Python ETL pipelines that cleaned and standardized millions of rows.",
				"Reduced manual effort by 80% through automation of end-to-end reporting workflows.",
				"Improved pipeline reliability and accuracy by building SQL + Python scripts for data cleaning and validation.",
			},
			Highlights: "Python, SQL, Pandas, Big Data, ETL pipelines, workflow automation",
			CTA:        "I’d be glad to discuss how my background in building reliable data workflows can strengthen {Company}’s data infrastructure and support downstream analytics.",
		},
		"Machine Learning Engineer": {
			Pitch: `<p>I hold a B.Tech in Electrical Engineering from <b>IIT Bombay (2024)</b> and currently work as a
<b>Data Analytics and Automation Specialist</b> at <b>Bintix</b>. My role bridges data engineering and applied AI, where I have:</p>

<ul>
<li>Designed and deployed <b>Python-based ETL pipelines</b> to clean, transform, and scale datasets for downstream analytics.</li>
<li>Developed the <b>Graahax AI agent</b>, an NLP-powered assistant that extracts KPIs and data cuts using prompt engineering and fuzzy matching.</li>
<li>Automated reporting workflows and integrated AI outputs into <b>Streamlit dashboards</b>, reducing manual effort by 80%.</li>
</ul>

<p>At <b>Bintix</b>, I have successfully combined <b>AI integration</b> with <b>data pipeline engineering</b>
to deliver scalable, insight-driven solutions for global clients such as <b>L’Oréal, HUL, and ITC</b>.
I believe this unique blend of skills makes me a strong fit for <b>{Company}</b>’s data initiatives.</p>`,
			Bullets: [3]string{
				"Built the Graahax AI agent using LLMs, prompt engineering, and fuzzy matching to turn natural language queries into structured KPI insights.",
				"Developed scalable Python ETL pipelines for ingestion, cleaning, and transformation of large datasets, ensuring accuracy and reliability.",
				"Automated reporting workflows and integrated AI-driven insights into Streamlit dashboards, cutting manual analyst effort by 80%.",
			},
			Highlights: "AI agents, Prompt Engineering, Python, SQL, ETL pipelines, workflow automation",
			CTA:        "I’d welcome the chance to discuss how my expertise in AI-powered agents and data engineering can strengthen {Company}’s data science and analytics efforts.",
		},
		"Data Governance Analyst": {
			Pitch: `<p>I hold a B.Tech in Electrical Engineering from <b>IIT Bombay (2024)</b> and currently work
as a <b>Data Analytics and Automation Specialist</b> at Bintix. My experience sits at the
intersection of <b>analytics and engineering</b>, with a strong emphasis on data quality and governance:</p>

<ul>
<li>Designing <b>Python + SQL pipelines</b> for data cleaning, validation, and transformation, ensuring accuracy and reliability across datasets.</li>
<li>Automating reporting workflows that enforce <b>data consistency and auditability</b> across multiple stakeholders.</li>
<li>Developing dashboards that combine <b>data lineage tracking and KPI insights</b> for clients such as <b>L’Oréal, HUL, and ITC</b>.</li>
</ul>

<p>My skills in <b>data governance, process automation, and pipeline reliability</b> enable me
to bridge the gap between engineering and analytics, ensuring data is not only insightful but
also trusted. I’m excited to bring this blend of expertise to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Built automated pipelines to validate, transform, and reconcile multi-source data, ensuring governance and reporting integrity.",
				"Developed dashboards combining data lineage with business KPIs, enhancing transparency and decision-making.",
				"Partnered with global clients on compliance-critical projects, strengthening my focus on accuracy, auditability, and governance.",
			},
			Highlights: "Data governance, Python, SQL, ETL, pipeline validation, data lineage, compliance",
			CTA:        "I’d be glad to discuss how my combined experience in analytics and engineering can help strengthen {Company}’s data governance and reliability frameworks.",
		},
		"Product Analyst": {
			Pitch: `<p>I hold a B.Tech in Electrical Engineering from <b>IIT Bombay (2024)</b> and currently work
as a <b>Data Analytics and Automation Specialist</b> at Bintix, collaborating with product and
business stakeholders to guide decision-making and feature prioritization:</p>

<ul>
<li>Building <b>KPI dashboards</b> in Streamlit and Power BI that track brand performance, consumer journeys, and adoption patterns.</li>
<li>Automating SQL + Python workflows for real-time reporting on <b>user behavior and market trends</b>, reducing manual effort by 80%.</li>
<li>Developing an <b>Innovations Tracker</b> that benchmarked new product launches and highlighted whitespace opportunities for growth.</li>
</ul>

<p>With expertise in <b>SQL, Python, dashboarding, and analytics automation</b>,
I specialize in transforming raw datasets into insights that inform <b>product strategy and growth decisions</b>.
I’m excited to bring this impact-driven mindset to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Designed KPI dashboards to track adoption, journeys, and performance, giving product teams clarity on growth levers.",
				"Automated SQL + Python pipelines for reporting, enabling faster, more reliable insights on user and market behavior.",
				"Built an Innovations Tracker Dashboard to benchmark competitor launches and spot market whitespace, shaping product strategy.",
			},
			Highlights: "Product-focused analytics, SQL, Python, dashboarding, consumer journeys, growth insights",
			CTA:        "I’d love the opportunity to discuss how my analytics background can support {Company}’s product growth and help shape data-informed decisions.",
		},
		"Python Developer": {
			Pitch: `<p>I hold a B.Tech in Electrical Engineering from <b>IIT Bombay (2024)</b> and currently work
as a <b>Data Analytics and Automation Specialist</b> at Bintix. My work revolves around
designing scalable Python solutions and automations:</p>

<ul>
<li>Developing <b>Python-based ETL pipelines</b> for ingestion, cleaning, and transformation of millions of rows of data.</li>
<li>Building and deploying <b>automation scripts and APIs</b> to streamline reporting and integration with client systems.</li>
<li>Implementing <b>AI-powered agents</b> and integrating them into dashboards using FastAPI and Streamlit.</li>
</ul>

<p>My expertise in <b>Python, SQL, APIs, and workflow automation</b> has enabled me to
deliver production-ready, scalable solutions for global clients such as <b>L’Oréal, HUL, and ITC</b>.
I’m excited about the opportunity to bring the same impact to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Built Python ETL pipelines to clean, transform, and load large datasets for reliable workflows.",
				"Developed automation scripts and APIs, streamlining reporting and system integrations.",
				"Integrated AI-powered agents into dashboards with FastAPI and Streamlit for interactive analytics.",
			},
			Highlights: "Python, APIs, ETL pipelines, FastAPI, workflow automation, data integration",
			CTA:        "I’d welcome the chance to discuss how my Python expertise and automation background can strengthen {Company}’s engineering efforts.",
		},
	},

	"sakshi": {
		"Full Stack Developer": {
			Pitch: `<p>I hold a B.Tech in Computer Science and currently work as a <b>Full Stack Developer</b>,
where I’ve gained hands-on experience in designing, building, and scaling end-to-end web applications:</p>

<ul>
<li>Developing a profiling portal using <b>React.js, Node.js, and TypeScript</b> with role-based access control.</li>
<li>Building RESTful APIs for barcode lifecycle management, including assignment, validation, and approval workflows.</li>
<li>Optimizing backend queries and designing scalable data-driven UIs for real-time insights.</li>
</ul>

<p>My expertise across <b>frontend (React.js, TypeScript)</b> and <b>backend (Node.js, APIs, SQL)</b>
enables me to deliver production-ready solutions, and I’m excited about applying the same to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Built end-to-end web applications with React.js, Node.js, and TypeScript, gaining strong expertise in both frontend and backend.",
				"Designed modular APIs and scalable database interactions for workflow automation and real-time insights.",
				"Implemented secure role-based access systems and optimized backend performance for large-scale data operations.",
			},
			Highlights: "React.js, Node.js, TypeScript, REST APIs, SQL, Full Stack Architecture",
			CTA:        "I’d love to discuss how my full-stack expertise can help {Company} build scalable and user-focused applications.",
		},
		"Frontend Developer": {
			Pitch: `<p>I specialize in creating responsive, user-centric web applications using
<b>React.js, TypeScript, and modern UI frameworks</b>. My recent contributions include:</p>

<ul>
<li>Developing interactive dashboards with dynamic dropdowns and search features connected to live databases.</li>
<li>Implementing reusable React components for forms, validations, and visualization modules.</li>
<li>Optimizing page performance and enhancing user experience with clean UI/UX design.</li>
</ul>

<p>With my focus on <b>UI/UX, frontend performance, and modern JavaScript frameworks</b>,
I am excited to bring impactful user experiences to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Designed and built interactive dashboards in React.js and TypeScript, focusing on responsive design and performance.",
				"Developed reusable UI components, form handlers, and visualization modules for scalable frontend projects.",
				"Enhanced user experience with optimized rendering, smooth navigation, and accessible design.",
			},
			Highlights: "React.js, TypeScript, JavaScript ES6+, UI/UX, Frontend Development",
			CTA:        "I’d be excited to contribute to {Company} by delivering intuitive and performance-driven frontend applications.",
		},
		"Backend Developer": {
			Pitch: `<p>I bring strong experience in <b>backend development with Node.js, Express, and SQL</b>.
At my current role, I have:</p>

<ul>
<li>Designed and deployed RESTful APIs for barcode lifecycle management and workflow automation.</li>
<li>Implemented authentication and role-based access control for secure applications.</li>
<li>Optimized database queries and built scalable data pipelines for bulk operations and analytics.</li>
</ul>

<p>My focus on <b>API design, database optimization, and system scalability</b>
makes me eager to contribute to <b>{Company}</b>’s backend engineering team.</p>`,
			Bullets: [3]string{
				"Developed and optimized RESTful APIs with Node.js and Express for workflow automation and data management.",
				"Built secure backend services with authentication, authorization, and role-based access control.",
				"Improved system scalability by optimizing SQL queries and designing efficient database workflows.",
			},
			Highlights: "Node.js, Express, SQL, Authentication, API Development, Backend Scalability",
			CTA:        "I’d be glad to explore how my backend expertise can strengthen {Company}’s engineering team and infrastructure.",
		},
		"Software Developer": {
			Pitch: `<p>As a <b>Software Developer</b>, I bring experience in building reliable, scalable, and user-focused applications.
My work spans <b>frontend, backend, and database systems</b>, allowing me to contribute to every layer of software development:</p>

<ul>
<li>Developed end-to-end web applications using <b>React.js, Node.js, and TypeScript</b> with modular, reusable components.</li>
<li>Built RESTful APIs and optimized backend queries to support high-volume data workflows.</li>
<li>Implemented secure role-based access and designed scalable databases for performance-driven applications.</li>
</ul>

<p>My expertise in <b>full-stack development, software architecture, and performance optimization</b>
equips me to deliver high-quality solutions, and I am eager to bring the same impact to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Developed full-stack web applications with React.js, Node.js, and TypeScript, ensuring scalable and maintainable codebases.",
				"Designed and deployed RESTful APIs, focusing on backend performance, data workflows, and integration reliability.",
				"Implemented secure role-based access systems and optimized database queries to enhance application performance.",
			},
			Highlights: "Full-Stack Development, React.js, Node.js, TypeScript, REST APIs, Software Architecture",
			CTA:        "I’d be excited to discuss how my software development expertise can support {Company} in building scalable and user-friendly applications.",
		},
		"Process Associate": {
			Pitch: `<p>I have experience in <b>data processing, workflow optimization, and process documentation</b>
to ensure smooth and accurate business operations. My recent contributions include:</p>

<ul>
<li>Processing large data sets and ensuring 100% accuracy through verification and validation steps.</li>
<li>Maintaining detailed documentation for audits, performance tracking, and process improvements.</li>
<li>Collaborating with cross-functional teams to resolve operational bottlenecks and streamline workflows.</li>
</ul>

<p>With my attention to detail, <b>process discipline, and commitment to efficiency</b>,
I look forward to supporting <b>{Company}</b> in delivering seamless business operations.</p>`,
			Bullets: [3]string{
				"Processed and verified large datasets with a focus on accuracy and consistency across workflows.",
				"Created and maintained process documentation for audits and operational transparency.",
				"Collaborated with internal teams to identify and resolve process inefficiencies.",
			},
			Highlights: "Data Processing, Process Optimization, Documentation, MS Excel, Workflow Management",
			CTA:        "I’m eager to contribute to {Company} by ensuring efficient and accurate execution of core business processes.",
		},
	},

	"sai": {
		"Full Stack Engineer": {
			Pitch: `<p>I hold a B.Tech in <b>Computer Science and Engineering (2024)</b> from <b>Adikavi Nannaya University</b>
and currently work as a <b>Full Stack Engineer & App Developer</b> at <b>Bintix (T-Hub, Hyderabad)</b>.
Over the past 1.5 years, I have:</p>

<ul>
<li>Developed and deployed Android & iOS apps with AI-based features such as image blur detection, Bluetooth weighing, and real-time barcode validation — used across 7 metro cities.</li>
<li>Built dynamic web applications with <b>React</b> and <b>Material UI</b>, integrating <b>Highcharts</b> for interactive data visualizations.</li>
<li>Developed scalable web and backend applications, including a Node.js REST API project and a serverless Toy Store app on <b>Google Cloud (Cloud Run, Firebase, Vertex AI)</b>.</li>
</ul>

<p>My expertise in <b>React Native, React, Node.js, and Python</b> allows me to develop full-stack solutions
that are both high-performing and user-centric. I’m excited about the opportunity to bring
this experience to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"I’ve built and deployed production-ready mobile applications integrating AI-based features, demonstrating my ability to combine innovation with performance optimization.",
				"I developed complex React + Material UI web apps with Highcharts visualizations, showcasing my strength in designing engaging, data-driven user experiences.",
				"I developed scalable web and backend projects — including a Node.js REST API, a responsive restaurant website, and a serverless Toy Store App on Google Cloud — demonstrating my expertise in cloud-native solutions.",
			},
			Highlights: "React Native, React, Node.js, TypeScript, SQLite, Material UI, Python",
			CTA:        "I’d love the opportunity to discuss how I can contribute to {Company}’s engineering team and help build scalable, impactful digital products.",
		},
		"Android Developer": {
			Pitch: `<p>I currently work as an <b>App Developer</b> at <b>Bintix</b>, where I build and ship production
Android applications used in the field every day:</p>

<ul>
<li>Built and deployed Android applications integrating AI features, ensuring high performance and user engagement.</li>
<li>Developed dynamic, responsive screens with Kotlin, Java, and Jetpack Compose.</li>
<li>Integrated apps with Firebase and REST APIs for scalable cloud-native experiences.</li>
</ul>

<p>My focus on <b>mobile performance and reliability</b> makes me eager to bring the same
impact to <b>{Company}</b>’s Android team.</p>`,
			Bullets: [3]string{
				"Built and deployed Android applications integrating AI features, ensuring high performance and user engagement.",
				"Proficient in Kotlin, Java, and Jetpack Compose for creating dynamic, responsive applications.",
				"Integrated apps with Firebase and REST APIs for scalable cloud-native experiences.",
			},
			Highlights: "Kotlin, Java, Android SDK, Firebase, Jetpack Compose, REST APIs",
			CTA:        "I’d love to discuss how I can contribute to {Company}’s Android development team and deliver impactful mobile solutions.",
		},
		"Frontend Developer": {
			Pitch: `<p>I build responsive, data-driven web interfaces as a <b>Full Stack Engineer</b> at <b>Bintix</b>:</p>

<ul>
<li>Developed responsive and dynamic web applications with React and Material UI.</li>
<li>Integrated interactive charts and dashboards using Highcharts for better data insights.</li>
<li>Optimized frontend performance, accessibility, and cross-browser compatibility.</li>
</ul>

<p>I’m excited to bring this experience in <b>modern frontend engineering</b> to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Developed responsive and dynamic web applications with React and Material UI.",
				"Integrated interactive charts and dashboards using Highcharts for better data insights.",
				"Optimized frontend performance, accessibility, and cross-browser compatibility.",
			},
			Highlights: "React, JavaScript, Material UI, HTML, CSS, Highcharts",
			CTA:        "I’d love to discuss how I can contribute to {Company}’s frontend development team and build intuitive user interfaces.",
		},
		"Mobile Developer": {
			Pitch: `<p>I build cross-platform mobile applications as an <b>App Developer</b> at <b>Bintix</b>:</p>

<ul>
<li>Built and deployed mobile applications for Android and iOS integrating AI features.</li>
<li>Developed responsive apps with React Native, Flutter, and native mobile SDKs.</li>
<li>Integrated cloud services like Firebase and Google Cloud for scalable mobile deployments.</li>
</ul>

<p>I’m eager to bring this <b>cross-platform mobile experience</b> to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Built and deployed mobile applications for Android and iOS integrating AI features.",
				"Proficient in React Native, Flutter, and native mobile SDKs for creating responsive apps.",
				"Integrated cloud services like Firebase and Google Cloud for scalable mobile deployments.",
			},
			Highlights: "React Native, Flutter, Android SDK, iOS SDK, Firebase, Google Cloud",
			CTA:        "I’d love to discuss how I can contribute to {Company}’s mobile development team and deliver impactful apps.",
		},
		"Software Developer": saiSoftwareBundle,
		"Software Engineer":  saiSoftwareBundle,
	},

	"harsha": {
		"Data Analyst": {
			Pitch: `<p>I bring hands-on experience in analyzing consumer and market data to generate
actionable insights for strategic decision-making:</p>

<ul>
<li>Strong foundation in reporting and dashboarding using Advanced Excel and Power BI.</li>
<li>Experience in market research, financial analysis, and project delivery.</li>
<li>Adept at managing end-to-end data initiatives that align with business goals.</li>
</ul>

<p>I’d be glad to bring this <b>analytical and research experience</b> to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"I bring hands-on experience in analyzing consumer and market data to generate actionable insights for strategic decision-making.",
				"I have a strong foundation in reporting and dashboarding using Advanced Excel and Power BI, enabling data-driven storytelling for business stakeholders.",
				"With experience in market research, financial analysis, and project delivery, I’m adept at managing end-to-end data initiatives that align with business goals.",
			},
			Highlights: "Advanced Excel, Power BI, MySQL (Basics), Reporting & Analysis, Market Research",
			CTA:        "I’d love the opportunity to discuss how my analytical skills and research experience can contribute to {Company}’s data analytics team.",
		},
		"Market Researcher": {
			Pitch: `<p>I have hands-on experience conducting qualitative and quantitative research to uncover
consumer behavior and market trends:</p>

<ul>
<li>Skilled in designing surveys, collecting data, and using SPSS and Excel for actionable insights.</li>
<li>Experienced in delivering market research projects end-to-end.</li>
<li>Focused on accurate insights for strategic decision-making.</li>
</ul>

<p>I’d be excited to put this <b>research expertise</b> to work for <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"I have hands-on experience conducting qualitative and quantitative research to uncover consumer behavior and market trends.",
				"Skilled in designing surveys, collecting data, and using SPSS and Excel for actionable insights.",
				"Experienced in delivering market research projects end-to-end, ensuring accurate insights for strategic decision-making.",
			},
			Highlights: "Market Research, Consumer Insights, SPSS, Excel, Survey Design, Data Analysis",
			CTA:        "I’d love the opportunity to discuss how my market research expertise can help {Company} make informed, data-driven decisions.",
		},
		"Project Manager": {
			Pitch: `<p>I bring proven experience in planning, executing, and monitoring projects across diverse sectors:</p>

<ul>
<li>Strong skills in stakeholder management and coordinating cross-functional teams.</li>
<li>Proficient in project tracking, reporting, and tools like MS Project and Excel.</li>
<li>Focused on data-driven decisions and on-time delivery.</li>
</ul>

<p>I’d welcome the chance to drive successful initiatives at <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Proven experience in planning, executing, and monitoring projects across diverse sectors.",
				"Strong skills in stakeholder management and coordinating cross-functional teams to achieve project goals.",
				"Proficient in project tracking, reporting, and using tools like MS Project and Excel for data-driven decisions.",
			},
			Highlights: "Project Management, Stakeholder Management, MS Project, Excel, Reporting, Workflow Optimization",
			CTA:        "I’d love the opportunity to discuss how my project management skills can drive successful initiatives at {Company}.",
		},
	},

	"bhanu": {
		"Full Stack Developer": {
			Pitch: `<p>I currently work as a <b>Full Stack Developer</b> at <b>Bintix</b>, building and optimizing
production web applications end to end:</p>

<ul>
<li>Migrated PHP services to Node.js and improved UI performance using React and MUI.</li>
<li>Implemented REST APIs with Express and MongoDB, ensuring scalability, modularity, and reliability.</li>
<li>Developed personal projects like a Chat Application and an Entertainment Hub integrating APIs, authentication, and responsive design.</li>
</ul>

<p>My expertise across the stack makes me eager to build high-impact systems at <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"At Bintix, I built and optimized full-stack applications by migrating PHP services to Node.js and improving UI performance using React and MUI.",
				"I’ve implemented REST APIs with Express and MongoDB, ensuring scalability, modularity, and reliability across services.",
				"I developed personal projects like a Chat Application and an Entertainment Hub integrating APIs, authentication, and responsive design.",
			},
			Highlights: "React.js, Node.js, Express, MongoDB, RESTful APIs, MUI, and backend optimization",
			CTA:        "I’d love the opportunity to discuss how I can contribute to {Company}’s engineering team by building scalable, maintainable, and high-impact systems.",
		},
		"Software Developer": {
			Pitch: `<p>I build reliable backend and full-stack software at <b>Bintix</b>:</p>

<ul>
<li>Developed RESTful APIs and backend services in Node.js and Python, ensuring scalability and reliability.</li>
<li>Optimized data pipelines and algorithms to enhance system efficiency and throughput.</li>
<li>Created modular, reusable code for internal and client-facing applications.</li>
</ul>

<p>I’m eager to bring this focus on <b>robust, maintainable software</b> to <b>{Company}</b>.</p>`,
			Bullets: [3]string{
				"Developed RESTful APIs and backend services in Node.js and Python, ensuring scalability and reliability.",
				"Optimized data pipelines and algorithms to enhance system efficiency and throughput.",
				"Created modular, reusable code for internal and client-facing applications, improving maintainability.",
			},
			Highlights: "Node.js, Python, RESTful APIs, Backend Development, Data Pipelines, Algorithm Optimization",
			CTA:        "I’d love the opportunity to discuss how I can contribute to {Company}’s engineering team by building robust, scalable software solutions.",
		},
		"Backend Developer": {
			Pitch: `<p>I specialize in backend services and APIs, currently at <b>Bintix</b>:</p>

<ul>
<li>Built and maintained backend services with Node.js, Express, and MongoDB for production applications.</li>
<li>Optimized database queries and API responses to enhance performance and reduce server load.</li>
<li>Implemented secure authentication, authorization, and data validation mechanisms.</li>
</ul>

<p>I’d be glad to strengthen <b>{Company}</b>’s backend systems with the same rigor.</p>`,
			Bullets: [3]string{
				"Built and maintained backend services with Node.js, Express, and MongoDB for production applications.",
				"Optimized database queries and API responses to enhance performance and reduce server load.",
				"Implemented secure authentication, authorization, and data validation mechanisms for reliable systems.",
			},
			Highlights: "Node.js, Express, MongoDB, RESTful APIs, Backend Architecture, Security, Performance Optimization",
			CTA:        "I’d love the opportunity to discuss how I can contribute to {Company}’s backend team by building scalable, secure, and high-performance systems.",
		},
	},
}

// sai applies to generic software roles with the same content.
var saiSoftwareBundle = Bundle{
	Pitch: `<p>I work as a <b>Full Stack Engineer & App Developer</b> at <b>Bintix</b>, with end-to-end
development experience across web, mobile, and backend:</p>

<ul>
<li>Built full-stack applications with React, Node.js, and Python, demonstrating end-to-end development capabilities.</li>
<li>Developed scalable backend services and REST APIs for multiple projects.</li>
<li>Integrated cloud solutions using Google Cloud and Firebase for efficient deployments.</li>
</ul>

<p>I’m excited to deliver the same kind of <b>scalable solutions</b> at <b>{Company}</b>.</p>`,
	Bullets: [3]string{
		"Built full-stack applications with React, Node.js, and Python, demonstrating end-to-end development capabilities.",
		"Developed scalable backend services and REST APIs for multiple projects.",
		"Integrated cloud solutions using Google Cloud and Firebase for efficient deployments.",
	},
	Highlights: "React, Node.js, Python, Firebase, Google Cloud, REST APIs",
	CTA:        "I’d love the opportunity to discuss how I can contribute to {Company}’s software engineering team and deliver scalable solutions.",
}
