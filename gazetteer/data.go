package gazetteer

var medicalSubcategories = []Subcategory{
	{Label: "Conditions", Phrases: []string{
		"diabetes", "type 1 diabetes", "type i diabetes", "type 2 diabetes", "type ii diabetes",
		"gestational diabetes", "prediabetes",
		"hypertension", "high blood pressure",
		"cancer", "carcinoma", "sarcoma", "leukemia", "lymphoma", "melanoma",
		"stroke", "cerebrovascular accident", "cva", "tia", "transient ischemic attack",
		"asthma", "copd", "chronic obstructive pulmonary disease", "emphysema", "chronic bronchitis",
		"pneumonia", "tuberculosis", "tb", "influenza", "flu",
		"arthritis", "osteoarthritis", "rheumatoid arthritis", "gout", "psoriatic arthritis",
		"heart attack", "myocardial infarction", "mi", "coronary artery disease", "cad", "angina",
		"heart failure", "congestive heart failure", "chf",
		"kidney failure", "renal failure", "ckd", "chronic kidney disease", "aki", "acute kidney injury",
		"liver disease", "cirrhosis", "hepatitis", "fatty liver", "nafld", "nash",
		"hiv", "aids", "viral load suppression",
		"covid-19", "covid", "sars-cov-2", "long covid", "post-acute sequelae",
		"thyroid disorder", "hypothyroidism", "hyperthyroidism", "graves disease", "hashimoto thyroiditis",
		"dyslipidemia", "hyperlipidemia", "high cholesterol", "hypertriglyceridemia",
		"anemia", "iron deficiency", "b12 deficiency", "folate deficiency",
		"depression", "major depressive disorder", "mdd", "anxiety", "panic disorder", "bipolar disorder",
		"schizophrenia", "adhd", "autism spectrum disorder",
		"migraine", "tension headache", "cluster headache",
		"peptic ulcer", "gerd", "gastroesophageal reflux disease", "gastritis", "ibs",
		"inflammatory bowel disease", "crohn disease", "ulcerative colitis",
		"osteoporosis", "osteopenia",
		"dermatitis", "eczema", "psoriasis", "urticaria", "hives",
		"sepsis", "bacteremia", "cellulitis",
		"pregnancy", "preeclampsia", "gestational hypertension",
		"obesity", "overweight", "malnutrition",
		"sleep apnea", "osa",
		"arrhythmia", "atrial fibrillation", "afib", "ventricular tachycardia",
		"pulmonary embolism", "pe", "deep vein thrombosis", "dvt",
		"cystic fibrosis", "sickle cell disease", "thalassemia",
		"parkinson disease", "alzheimer disease", "dementia", "epilepsy", "seizure disorder",
	}},
	{Label: "Medications", Phrases: []string{
		"paracetamol", "acetaminophen", "ibuprofen", "naproxen", "diclofenac", "aspirin",
		"tramadol", "morphine", "oxycodone", "codeine",
		"insulin", "metformin", "glipizide", "glyburide", "gliclazide", "glimepiride",
		"sitagliptin", "linagliptin", "empagliflozin", "dapagliflozin", "canagliflozin",
		"liraglutide", "semaglutide", "dulaglutide",
		"lisinopril", "enalapril", "ramipril", "perindopril",
		"losartan", "valsartan", "telmisartan", "olmesartan",
		"amlodipine", "nifedipine", "diltiazem", "verapamil",
		"atenolol", "metoprolol", "propranolol", "bisoprolol",
		"hydrochlorothiazide", "hctz", "chlorthalidone", "furosemide", "spironolactone",
		"atorvastatin", "simvastatin", "rosuvastatin", "pravastatin", "ezetimibe",
		"omeprazole", "pantoprazole", "esomeprazole", "rabeprazole", "lansoprazole",
		"ranitidine", "famotidine", "ondansetron", "domperidone", "metoclopramide",
		"albuterol", "salbutamol", "levalbuterol", "ipratropium", "tiotropium",
		"budesonide", "fluticasone", "formoterol", "salmeterol", "montelukast",
		"amoxicillin", "amoxicillin-clavulanate", "augmentin", "ampicillin",
		"azithromycin", "clarithromycin", "erythromycin",
		"ciprofloxacin", "levofloxacin", "moxifloxacin",
		"doxycycline", "tetracycline",
		"ceftriaxone", "cefixime", "cephalexin",
		"piperacillin-tazobactam", "vancomycin", "linezolid", "meropenem",
		"oseltamivir", "acyclovir", "valacyclovir", "remdesivir",
		"warfarin", "heparin", "enoxaparin", "apixaban", "rivaroxaban", "dabigatran",
		"clopidogrel", "prasugrel", "ticagrelor",
		"prednisone", "prednisolone", "methylprednisolone", "dexamethasone",
		"methotrexate", "azathioprine", "hydroxychloroquine",
		"levothyroxine", "calcitriol", "vitamin d", "cyanocobalamin", "folic acid",
		"sertraline", "fluoxetine", "escitalopram", "venlafaxine", "amitriptyline",
	}},
	{Label: "Procedures", Phrases: []string{
		"surgery", "minor surgery", "major surgery",
		"angioplasty", "stent placement", "catheterization", "cabg", "bypass surgery",
		"mri", "magnetic resonance imaging",
		"ct scan", "computed tomography", "pet scan", "pet-ct",
		"x-ray", "x ray", "ultrasound", "sonography", "echo", "echocardiogram", "ecg", "ekg",
		"biopsy", "fine needle aspiration", "fna", "core biopsy",
		"chemotherapy", "radiation therapy", "radiotherapy", "immunotherapy",
		"dialysis", "hemodialysis", "peritoneal dialysis",
		"endoscopy", "colonoscopy", "sigmoidoscopy", "egd", "gastroscopy", "bronchoscopy",
		"laparoscopy", "arthroscopy", "hysteroscopy",
		"transplant", "kidney transplant", "liver transplant", "bone marrow transplant",
		"lumbar puncture", "spinal tap", "thoracentesis", "paracentesis",
		"cesarean section", "c-section", "hysterectomy", "appendectomy", "cholecystectomy",
		"vaccination", "immunization", "wound debridement", "suturing", "intubation", "ventilation",
	}},
	{Label: "Lab Terms", Phrases: []string{
		"hemoglobin", "hgb", "hba1c", "a1c", "hematocrit", "hct",
		"cholesterol", "ldl", "hdl", "triglycerides",
		"blood sugar", "fasting glucose", "random glucose", "ogtt",
		"platelet count", "platelets", "wbc", "white blood cell", "rbc", "red blood cell",
		"creatinine", "bun", "urea", "egfr", "gfr",
		"alt", "sgpt", "ast", "sgot", "alp", "ggt", "bilirubin", "albumin",
		"crp", "esr", "d-dimer", "ferritin", "procalcitonin", "lactate",
		"inr", "pt", "prothrombin time", "aptt", "tsh", "t3", "t4",
		"troponin", "bnp", "nt-probnp",
		"urinalysis", "urine culture", "blood culture",
		"chest x-ray", "ct chest", "mri brain",
	}},
	{Label: "Document Types", Phrases: []string{
		"prescription", "rx", "medication order",
		"discharge summary", "discharge note",
		"lab report", "pathology report", "imaging report", "radiology report",
		"medical certificate", "fitness certificate",
		"operative report", "procedure note",
		"admission note", "progress note", "nursing note", "consultation note",
		"referral letter", "consent form",
		"vaccination record", "immunization card",
		"case sheet", "clinical summary",
		"death summary", "autopsy report",
		"billing statement", "insurance claim", "prior authorization",
	}},
	{Label: "Symptoms", Phrases: []string{
		"fever", "pyrexia", "chills", "rigors",
		"cough", "sputum", "shortness of breath", "dyspnea", "wheezing",
		"chest pain", "palpitation",
		"headache", "dizziness", "syncope",
		"nausea", "vomiting", "diarrhea", "constipation", "abdominal pain",
		"fatigue", "weakness", "malaise", "myalgia", "arthralgia",
		"rash", "itching", "pruritus", "swelling", "edema",
		"dysuria", "frequency", "urgency", "hematuria",
		"weight loss", "loss of appetite", "anorexia",
	}},
	{Label: "Vitals", Phrases: []string{
		"blood pressure", "bp", "heart rate", "pulse",
		"respiratory rate", "rr", "temperature", "oxygen saturation", "spo2",
		"height", "weight", "bmi", "body mass index",
	}},
	{Label: "Devices", Phrases: []string{
		"pacemaker", "defibrillator", "ventilator", "nebulizer", "cpap", "bipap",
		"insulin pump", "glucometer", "oxygen concentrator", "catheter", "stent",
	}},
}

var legalSubcategories = []Subcategory{
	{Label: "Document Types", Phrases: []string{
		"contract", "agreement", "master services agreement", "msa",
		"statement of work", "sow", "purchase agreement", "sale agreement",
		"affidavit", "deposition transcript",
		"lease", "rental agreement", "tenancy agreement",
		"nda", "non-disclosure agreement", "confidentiality agreement",
		"mou", "memorandum of understanding", "term sheet", "letter of intent", "loi",
		"power of attorney", "poa",
		"will", "last will and testament", "codicil", "trust deed",
		"deed", "sale deed", "gift deed", "mortgage deed", "assignment deed",
		"settlement", "settlement agreement", "release", "waiver",
		"memorandum", "minutes of meeting", "board resolution", "bylaws",
		"articles of association", "articles of incorporation", "certificate of incorporation",
		"employment agreement", "offer letter", "separation agreement",
		"privacy policy", "terms of service", "cookie policy",
		"license", "licence", "sub-licence", "franchise agreement",
		"service level agreement", "sla", "data processing agreement", "dpa",
		"notice", "legal notice", "cease and desist",
		"complaint", "petition", "plaint", "summons", "subpoena", "writ",
		"motion", "brief", "reply", "rejoinder",
		"order", "interim order", "injunction", "judgment", "decree", "consent order",
		"legal opinion", "due diligence report", "opinion letter",
		"addendum", "amendment", "appendix", "annexure", "schedule", "rider",
	}},
	{Label: "Parties", Phrases: []string{
		"plaintiff", "defendant", "claimant", "respondent", "petitioner", "appellant", "appellee",
		"lessor", "lessee", "landlord", "tenant",
		"licensor", "licensee", "assignor", "assignee",
		"buyer", "purchaser", "seller", "vendor", "supplier", "customer", "client",
		"guarantor", "surety", "indemnitor", "indemnitee",
		"witness", "counsel", "attorney", "advocate", "barrister", "solicitor",
		"agent", "principal", "shareholder", "director", "officer", "trustee", "beneficiary",
	}},
	{Label: "Clauses", Phrases: []string{
		"termination", "termination for convenience", "termination for cause",
		"confidentiality", "non-disclosure",
		"liability", "limitation of liability", "cap on liability",
		"arbitration", "mediation", "dispute resolution",
		"indemnity", "indemnification", "defense and hold harmless",
		"force majeure",
		"jurisdiction", "venue", "governing law", "choice of law",
		"assignment", "subcontracting", "change of control",
		"notice", "notices",
		"payment terms", "fees", "invoicing", "taxes",
		"warranty", "representations and warranties",
		"intellectual property", "ip ownership", "license grant",
		"privacy", "data protection", "data security", "conflict of interest",
		"non-compete", "non-solicitation", "non-poaching",
		"audit rights", "records retention",
		"severability", "waiver", "entire agreement", "amendment", "counterparts",
		"injunctive relief", "specific performance",
		"compliance with laws", "anti-bribery", "anti-corruption", "sanctions",
	}},
	{Label: "Deadlines", Phrases: []string{
		"effective date", "commencement date", "start date",
		"closing date", "completion date", "delivery date",
		"expiry date", "expiration date", "end date", "renewal date", "auto-renewal",
		"termination date",
		"notice period", "cure period", "grace period", "response deadline",
		"statute of limitations", "hearing date", "filing deadline",
	}},
	{Label: "Court & Procedure", Phrases: []string{
		"case number", "docket", "cause of action", "prayer", "relief sought",
		"precedent", "ratio decidendi", "obiter dicta",
		"burden of proof", "standard of proof",
		"evidence", "exhibit", "discovery", "interrogatories", "subpoena duces tecum",
		"decree", "order", "judgment", "consent decree", "appeal", "remand",
	}},
	{Label: "Remedies & Damages", Phrases: []string{
		"damages", "compensatory damages", "consequential damages", "liquidated damages",
		"punitive damages", "statutory damages",
		"injunction", "specific performance", "rescission", "restitution",
	}},
	{Label: "IP & Tech", Phrases: []string{
		"patent", "trademark", "copyright", "trade secret",
		"infringement", "license", "royalty", "assignment", "field of use",
		"open source", "oss", "copyleft", "gpl", "mit license",
	}},
}

var financialSubcategories = []Subcategory{
	{Label: "Transaction Terms", Phrases: []string{
		"investment", "loan", "credit", "debit", "payment", "payout", "remittance",
		"invoice", "bill", "purchase order", "po", "sales order", "so",
		"receipt", "voucher", "credit note", "debit note",
		"wire transfer", "swift", "neft", "rtgs", "ach", "sepa", "upi",
		"direct debit", "standing order", "escrow", "lien", "collateral",
		"equity", "debt", "bond", "note", "commercial paper", "t-bill",
		"dividend", "coupon", "interest", "principal", "amortization",
		"hedge", "forward", "future", "option", "swap", "derivative",
		"ipo", "follow-on offering", "buyback", "rights issue", "bonus issue",
		"reconciliation", "chargeback", "write-off", "provision", "impairment",
	}},
	{Label: "Metrics", Phrases: []string{
		"revenue", "sales", "turnover", "expenditure", "operating expense", "opex",
		"capital expenditure", "capex", "profit", "loss",
		"gross margin", "operating margin", "net margin",
		"ebit", "ebitda", "ebita", "net income", "net profit",
		"roi", "roa", "roe", "roc", "roce",
		"eps", "pe ratio", "price to earnings", "book value", "market cap",
		"free cash flow", "fcf", "cash flow", "operating cash flow",
		"working capital", "current ratio", "quick ratio",
		"inventory turnover", "days sales outstanding", "dso",
		"days payables outstanding", "dpo", "days inventory outstanding", "dio",
		"arr", "mrr", "ltv", "cac", "burn rate", "runway",
	}},
	{Label: "Compliance", Phrases: []string{
		"audit", "internal audit", "external audit", "statutory audit",
		"tax", "withholding tax", "sales tax", "vat", "gst",
		"regulation", "compliance", "kyc", "aml", "cft", "sanctions screening",
		"ifrs", "gaap", "ias", "asc 606", "asc 842",
		"sarbanes-oxley", "sox", "basel iii", "mifid ii",
		"pci dss", "gdpr", "fatca", "ccpa",
	}},
	{Label: "Statements & Ledgers", Phrases: []string{
		"balance sheet", "statement of financial position",
		"income statement", "profit and loss", "p&l",
		"cash flow statement", "statement of cash flows",
		"statement of changes in equity",
		"trial balance", "general ledger", "gl", "subledger", "journal entry", "chart of accounts",
	}},
	{Label: "Instruments", Phrases: []string{
		"equity", "preference shares", "preferred stock", "common stock",
		"bond", "debenture", "convertible note", "safe", "warrant",
		"etf", "mutual fund", "reit", "certificate of deposit", "cd",
		"fx", "foreign exchange", "currency swap",
	}},
	{Label: "Currencies & Units", Phrases: []string{
		"usd", "eur", "gbp", "inr", "jpy", "cny", "cad", "aud", "chf", "sgd",
		"$", "€", "£", "₹", "¥",
		"percent", "%", "basis points", "bps",
	}},
	{Label: "Accounting Terms", Phrases: []string{
		"accrual", "deferral", "depreciation", "amortization",
		"goodwill", "impairment", "intangible asset", "ppe", "inventory",
		"revenue recognition", "matching principle", "materiality", "conservatism",
		"contingent liability", "provision", "lease liability", "right-of-use asset",
		"prepaid expense", "accounts receivable", "accounts payable", "deferred revenue",
	}},
	{Label: "Tax Documents", Phrases: []string{
		"tax invoice", "credit memo", "debit memo",
		"form w-9", "form 1099", "form w-8ben", "form 1040",
		"pan", "tan", "gstin", "hsn code", "sac code",
	}},
	{Label: "Payment Details", Phrases: []string{
		"iban", "swift bic", "routing number", "ifsc", "upi id", "bank account number",
		"check", "cheque", "draft", "neft utr", "rtgs utr", "ach trace",
	}},
}
