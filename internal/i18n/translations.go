package i18n

// builtin is the compiled-in translation table: key -> language code -> text.
var builtin = map[string]map[string]string{
	"settings": {
		"en":  "Settings",
		"hi":  "सेटिंग्स",
		"as":  "সেটিংছ",
		"bn":  "সেটিংস",
		"bo":  "सेटिंग्स",
		"gu":  "સેટિંગ્સ",
		"kn":  "ಸೆಟ್ಟಿಂಗ್ಗಳು",
		"ml":  "സെറ്റിംഗുകൾ",
		"mni": "সেটিংস",
		"mr":  "सेटिंग्ज",
		"or":  "ସେଟିଂସ୍",
		"pa":  "ਸੈਟਿੰਗਜ਼",
		"raj": "सेटिंग्स",
		"ta":  "அமைப்புகள்",
		"te":  "సెట్టింగ్స్",
		"ur":  "سیٹنگز",
	},
	"endConsultation": {
		"en":  "End Consultation",
		"hi":  "परामर्श समाप्त करें",
		"as":  "সल्लা সম্পন্ন কৰক",
		"bn":  "পরামর্শ শেষ করুন",
		"bo":  "सल्ला समाप्त करा",
		"gu":  "કન્સલ્ટેશન終了",
		"kn":  "ಪरामರ್ಶೆಯನ್ನು ಕೊನೆಗೊಳಿಸಿ",
		"ml":  "സമ്മേളനം അവസാനിപ്പിക്കുക",
		"mni": "পরামর্শ সমাপ্ত",
		"mr":  "सल्ला समाप्त करा",
		"or":  "ପରାମର୍ଶ ସମାପ୍ତ କରନ୍ତୁ",
		"pa":  "ਕਨਸਲਟੇਸ਼ਨ ਖਤਮ ਕਰੋ",
		"raj": "सलाह समाप्त करो",
		"ta":  "ஆலோசனை முடிக்கவும்",
		"te":  "సలహా ముగించు",
		"ur":  "مشاورت ختم کریں",
	},
	"languageSettings": {
		"en":  "Language Settings",
		"hi":  "भाषा सेटिंग्स",
		"as":  "ভাষা সেটিংছ",
		"bn":  "ভাষা সেটিংস",
		"bo":  "भासा सेटिंग्स",
		"gu":  "ભાષા સેટિંગ્સ",
		"kn":  "ಭಾಷೆ ಸೆಟ್ಟಿಂಗ್ಗಳು",
		"ml":  "ഭാഷാ ക്രമീകരണങ്ങൾ",
		"mni": "ভাষা সেটিংস",
		"mr":  "भाषा सेटिंग्ज",
		"or":  "ଭାଷା ସେଟିଂସ୍",
		"pa":  "ਭਾਸ਼ਾ ਸੈਟਿੰਗਜ਼",
		"raj": "भाषा सेटिंग्स",
		"ta":  "பாஷை அமைப்புகள்",
		"te":  "భాషా సెట్టింగ్స్",
		"ur":  "زبان کی ترتیبات",
	},
	"interfaceLanguage": {
		"en":  "Interface Language",
		"hi":  "इंटरफ़ेस भाषा",
		"as":  "ইন্টারফেচ ভাষা",
		"bn":  "ইন্টারফেস ভাষা",
		"bo":  "इंटरफेस भासा",
		"gu":  "ઇન્ટરફેસ ભાષા",
		"kn":  "ಇಂಟರ್ಫೇಸ್ ಭಾಷೆ",
		"ml":  "ഇന്റർഫേസ് ഭാഷ",
		"mni": "ইন্টারফেস ভাষা",
		"mr":  "इंटरफेस भाषा",
		"or":  "ଇଣ୍ଟରଫେସ୍ ଭାଷା",
		"pa":  "ਇੰਟਰਫੇਸ ਭਾਸ਼ਾ",
		"raj": "इंटरफेस भाषा",
		"ta":  "இண்டர்பேஸ் மொழி",
		"te":  "ఇంటర్ఫేస్ భాష",
		"ur":  "انٹرفیس زبان",
	},
	"preferredLanguage": {
		"en":  "Preferred Language",
		"hi":  "पसंदीदा भाषा",
		"as":  "পছন্দৰ ভাষা",
		"bn":  "পছন্দের ভাষা",
		"bo":  "पसंदीदा भासा",
		"gu":  "પસંદગીની ભાષા",
		"kn":  "ಪREFERRED ಭಾಷೆ",
		"ml":  "പREFERRED ഭാഷ",
		"mni": "পREFERRED ভাষা",
		"mr":  "पREFERRED भाषा",
		"or":  "ପREFERRED ଭାଷା",
		"pa":  "ਪREFERRED ਭਾਸ਼ਾ",
		"raj": "पREFERRED भाषा",
		"ta":  "பREFERRED மொழி",
		"te":  "పREFERRED భాష",
		"ur":  "پسندیدہ زبان",
	},
	"autoDetect": {
		"en":  "Auto-detect Language",
		"hi":  "भाषा स्वतः पहचानें",
		"as":  "ভাষা স্বয়ংক্রিয় চিনাক্তকৰণ",
		"bn":  "ভাষা স্বয়ংক্রিয় শনাক্তকরণ",
		"bo":  "भासा स्वतः पचान",
		"gu":  "ભાષા આપોઆપ ઓળખો",
		"kn":  "ಭಾಷೆಯನ್ನು ಸ್ವಯಂಚಾಲಿತವಾಗಿ ಪತ್ತೆಹಚ್ಚಿ",
		"ml":  "ഭാഷ സ്വയം കണ്ടെത്തൽ",
		"mni": "ভাষা স্বয়ংক্রিয় শনাক্তকরণ",
		"mr":  "भाषा आपोआप ओळखा",
		"or":  "ଭାଷା ସ୍ୱୟଂଚାଳିତ ପରିଚୟ",
		"pa":  "ਭਾਸ਼ਾ ਆਪੋ-ਆਪ ਪਛਾਣੋ",
		"raj": "भाषा स्वचालित पहचान",
		"ta":  "மொழி தானாக கண்டுபிடிக்கவும்",
		"te":  "భాషను ఆటో-డిటెక్ట్ చేయండి",
		"ur":  "زبان خودکار طریقے سے شناخت کریں",
	},
	"voiceSettings": {
		"en":  "Voice Settings",
		"hi":  "आवाज़ सेटिंग्स",
		"as":  "স্বৰ সেটিংছ",
		"bn":  "স্বরের সেটিংস",
		"bo":  "स्वर सेटिंग्स",
		"gu":  "આવાજ સેટિંગ્સ",
		"kn":  "ಧ್ವನಿ ಸೆಟ್ಟಿಂಗ್ಗಳು",
		"ml":  "ശബ്ദ ക്രമീകരണങ്ങൾ",
		"mni": "স্বৰ সেটিংস",
		"mr":  "स्वर सेटिंग्ज",
		"or":  "ଶବ୍ଦ ସେଟିଂସ୍",
		"pa":  "ਆਵਾਜ਼ ਸੈਟਿੰਗਜ਼",
		"raj": "स्वर सेटिंग्स",
		"ta":  "ஶப்த அமைப்புகள்",
		"te":  "శబ్ద సెట్టింగ్స్",
		"ur":  "آواز کی ترتیبات",
	},
	"enableVoice": {
		"en":  "Enable Voice",
		"hi":  "आवाज़ सक्षम करें",
		"as":  "স্বৰ সক্ৰিয় কৰক",
		"bn":  "স্বর সক্রিয় করুন",
		"bo":  "स्वर सक्रिय करा",
		"gu":  "આવાજ સક્રિય કરો",
		"kn":  "ಧ್ವನಿಯನ್ನು ಸಕ್ರಿಯಗೊಳಿಸಿ",
		"ml":  "ശബ്ദം സജീവമാക്കുക",
		"mni": "স্বৰ সক্ৰিয় কৰক",
		"mr":  "स्वर सक्षम करा",
		"or":  "ଶବ୍ଦ ସକ୍ରିୟ କରନ୍ତୁ",
		"pa":  "ਆਵਾਜ਼ ਸਰਗਰਮ ਕਰੋ",
		"raj": "स्वर सक्षम करो",
		"ta":  "ஶப்தத்தை இயக்கவும்",
		"te":  "శబ్దాన్ని సక్రియం చేయండి",
		"ur":  "آواز کو فعال کریں",
	},
	"voiceGender": {
		"en":  "Voice Gender",
		"hi":  "आवाज़ का लिंग",
		"as":  "স্বৰৰ লিংগ",
		"bn":  "স্বরের লিঙ্গ",
		"bo":  "स्वर लिंग",
		"gu":  "આવાજનું લિંગ",
		"kn":  "ಧ್ವನಿಯ ಲಿಂಗ",
		"ml":  "ശബ്ദത്തിന്റെ ലിംഗം",
		"mni": "স্বরের লিঙ্গ",
		"mr":  "स्वर लिंग",
		"or":  "ଶବ୍ଦର ଲିଙ୍ଗ",
		"pa":  "ਆਵਾਜ਼ ਦਾ ਲਿੰਗ",
		"raj": "स्वर लिंग",
		"ta":  "ஶப்தத்தின் பாலினம்",
		"te":  "శబ్దం లింగం",
		"ur":  "آواز کا جنس",
	},
	"male": {
		"en":  "Male",
		"hi":  "पुरुष",
		"as":  "পুৰাণী",
		"bn":  "পুরুষ",
		"bo":  "पुरुष",
		"gu":  "પુરુષ",
		"kn":  "ಪುರುಷ",
		"ml":  "പുരുഷൻ",
		"mni": "পুরুষ",
		"mr":  "पुरुष",
		"or":  "ପୁରୁଷ",
		"pa":  "ਪੁਰਸ਼",
		"raj": "पुरुष",
		"ta":  "ஆண்கள்",
		"te":  "పురుషుడు",
		"ur":  "مرد",
	},
	"female": {
		"en":  "Female",
		"hi":  "महिला",
		"as":  "মহিলা",
		"bn":  "মহিলা",
		"bo":  "महिला",
		"gu":  "મહિલા",
		"kn":  "ಹೆಣ್ಣು",
		"ml":  "സ്ത്രീ",
		"mni": "মহিলা",
		"mr":  "महिला",
		"or":  "ମହିଳା",
		"pa":  "ਮਹੀਲਾ",
		"raj": "महिला",
		"ta":  "பெண்",
		"te":  "స్త్రీ",
		"ur":  "خاتون",
	},
	"title": {
		"en":  "Medical Consultation Summary",
		"hi":  "चिकित्सा परामर्श सारांश",
		"as":  "চিকিৎসা পৰামৰ্শ সাৰাংশ",
		"bn":  "চিকিৎসা পরামর্শ সারসংক্ষেপ",
		"bo":  "चिकित्सा परामर्श सारांश",
		"gu":  "ચિકિત્સા પરામર્શ સારાંશ",
		"kn":  "ವೈದ್ಯಕೀಯ ಸಮಾಲೋಚನೆ ಸಾರಾಂಶ",
		"ml":  "മെഡിക്കൽ കൺസൾട്ടേഷൻ സംഗ്രഹം",
		"mni": "চিকিৎসা পৰামৰ্শ সাৰাংশ",
		"mr":  "चिकित्सा सल्लागार सारांश",
		"or":  "ଚିକିତ୍ସା ପରାମର୍ଶ ସାରାଂଶ",
		"pa":  "ਚਿਕਿਤਸਾ ਸਲਾਹ ਮਸ਼ਵਰਾ ਸਾਰਾਂਸ਼",
		"raj": "चिकित्सा परामर्श सारांश",
		"ta":  "மருத்துவ ஆலோசனை சுருக்கம்",
		"te":  "వైద్య సంప్రదింపు సారాంశం",
		"ur":  "طبی مشاورت کا خلاصہ",
	},
	"patientDetails": {
		"en":  "Patient Details",
		"hi":  "मरीज़ का विवरण",
		"as":  "ৰোগী তথ্য",
		"bn":  "রোগীর বিবরণ",
		"bo":  "मरीज के विवरण",
		"gu":  "મरीजની વિગતો",
		"kn":  "ರೋಗಿಯ ವಿವರಗಳು",
		"ml":  "രോഗിയുടെ വിശദാംശങ്ങൾ",
		"mni": "ৰোগী তথ্য",
		"mr":  "रुग्णाची माहिती",
		"or":  "ରୋଗୀ ବିବରଣୀ",
		"pa":  "ਮਰੀਜ਼ ਦਾ ਵੇਰਵਾ",
		"raj": "रोगी का विवरण",
		"ta":  "நோயாளி விவரங்கள்",
		"te":  "రోగి వివరాలు",
		"ur":  "مریض کی تفصیلات",
	},
	"diagnosisTitle": {
		"en":  "Diagnosis Summary",
		"hi":  "निदान सारांश",
		"as":  "নিদান সাৰাংশ",
		"bn":  "নিদান সারসংক্ষেপ",
		"bo":  "निदान सारांश",
		"gu":  "નિદાન સારાંશ",
		"kn":  "ರೋಗ ನಿರ್ಣಯ ಸಾರಾಂಶ",
		"ml":  "രോഗനിർണ്ണയ സംഗ്രഹം",
		"mni": "নিদান সাৰাংশ",
		"mr":  "निदान सारांश",
		"or":  "ନିଦାନ ସାରାଂଶ",
		"pa":  "ਨਿਦਾਨ ਸਾਰਾਂਸ਼",
		"raj": "निदान सारांश",
		"ta":  "நோய் அறிதல் சுருக்கம்",
		"te":  "రోగ నిర్ధారణ సారాంశం",
		"ur":  "تشخیص کا خلاصہ",
	},
	"symptoms": {
		"en":  "Reported Symptoms",
		"hi":  "बताए गए लक्षण",
		"as":  "প্ৰতিবেদন কৰা লক্ষণসমূহ",
		"bn":  "প্রতিবেদিত উপসর্গ",
		"bo":  "रिपोर्टेड लक्षणहरू",
		"gu":  "રિપોર્ટેડ લક્ષણો",
		"kn":  "ನಿರ್ದಿಷ್ಟವಿರುವ ಲಕ್ಷಣಗಳು",
		"ml":  "റിപ്പോർട്ട് ചെയ്ത ലക്ഷണങ്ങൾ",
		"mni": "প্রতিবেদন কৰা লক্ষণসমূহ",
		"mr":  "वर्णन केलेली लक्षणे",
		"or":  "ରିପୋର୍ଟ କରାଗଲା ଲକ୍ଷଣ",
		"pa":  "ਰਿਪੋਰਟ ਕੀਤੇ ਗਏ ਲਕਸ਼ਣ",
		"raj": "रिपोर्टेड लक्षण",
		"ta":  "தெரிவிக்கப்பட்ட அறிகுறிகள்",
		"te":  "నివేదించిన లక్షణాలు",
		"ur":  "رپورٹ کردہ علامات",
	},
	"severity": {
		"en":  "Severity Score",
		"hi":  "गंभीरता स्कोर",
		"as":  "গম্ভীৰতা স্কୋର",
		"bn":  "গম্ভীরতার স্কোর",
		"bo":  "गंभीरता स्कोर",
		"gu":  "ગंभीरતા સ્કોર",
		"kn":  "ತೀವ್ರತೆ ಅಂಕ",
		"ml":  "തീവ്രത സ്കോർ",
		"mni": "গম্ভীৰতা স্কೋର",
		"mr":  "गंभीरता स्कोर",
		"or":  "ଗଭୀରତା ସ୍କୋର",
		"pa":  "ਗੰਭੀਰਤਾ ਸਕੋਰ",
		"raj": "गंभीरता स्कोर",
		"ta":  "தீவிர மதிப்பெண்",
		"te":  "తీవ్రత స్కోరు",
		"ur":  "شدت اسکور",
	},
	"riskLevel": {
		"en":  "Risk Level",
		"hi":  "जोखिम स्तर",
		"as":  "জোখিমৰ স্তৰ",
		"bn":  "ঝুঁকির স্তর",
		"bo":  "जोखिम स्तर",
		"gu":  "જોખમ સ્તર",
		"kn":  "ಆಪತ್ತು ಮಟ್ಟ",
		"ml":  "റിസ്ക് ലെവൽ",
		"mni": "ঝুঁকির স্তর",
		"mr":  "धोक्याचा स्तर",
		"or":  "ଝୁଙ୍କିର ସ୍ତର",
		"pa":  "ਖਤਰੇ ਦੀ ਸਤਰ",
		"raj": "जोखिम स्तर",
		"ta":  "ஆபத்து நிலை",
		"te":  "ప్రమాద స్థాయి",
		"ur":  "خطرہ کی سطح",
	},
	"treatmentTitle": {
		"en":  "Treatment Recommendations",
		"hi":  "उपचार की सिफारिशें",
		"as":  "চিকিৎসাৰ পৰামৰ্শ",
		"bn":  "চিকিৎসা সুপারিশ",
		"bo":  "उपचार सिफारिशहरू",
		"gu":  "ઉપચારની સુચનાઓ",
		"kn":  "ಚಿಕಿತ್ಸೆ ಶಿಫಾರಸುಗಳು",
		"ml":  "ചികിത്സാ ശുപാർശകൾ",
		"mni": "চিকিৎসাৰ পৰামৰ্শ",
		"mr":  "उपचार शिफारसी",
		"or":  "ଚିକିତ୍ସା ସୁପାରିଶ",
		"pa":  "ਚਿਕਿਤਸਾ ਸੁਪਰਿਸ਼ਾਂ",
		"raj": "उपचार की सिफारिशें",
		"ta":  "சிகிச்சை பரிந்துரைகள்",
		"te":  "చికిత్స సిఫార్సులు",
		"ur":  "علاج کی تجاویز",
	},
	"medications": {
		"en":  "Medications",
		"hi":  "दवाएं",
		"as":  "ঔষধ",
		"bn":  "ওষুধ",
		"bo":  "औषधि",
		"gu":  "દવાઓ",
		"kn":  "ಔಷಧಿಗಳು",
		"ml":  "മരുന്നുകൾ",
		"mni": "ঔষধ",
		"mr":  "औषधे",
		"or":  "ଔଷଧ",
		"pa":  "ਦਵਾਈਆਂ",
		"raj": "दवाइयाँ",
		"ta":  "மருந்துகள்",
		"te":  "మందులు",
		"ur":  "ادویات",
	},
	"homeRemedies": {
		"en":  "Home Remedies",
		"hi":  "घरेलू उपचार",
		"as":  "ঘৰোয়া চিকিৎসা",
		"bn":  "ঘরোয়া প্রতিকার",
		"bo":  "घरै उपचार",
		"gu":  "ઘરેલું ઉપચાર",
		"kn":  "ಮನೆಮದ್ದು",
		"ml":  "വീട്ടുവൈദ്യം",
		"mni": "ঘৰোয়া চিকিৎসা",
		"mr":  "घरगुती उपचार",
		"or":  "ଘରୋଇ ଚିକିତ୍ସା",
		"pa":  "ਘਰੇਲੂ ਇਲਾਜ",
		"raj": "घरगुती इलाज",
		"ta":  "வீட்டு மருத்துவம்",
		"te":  "ఇంటి వైద్యం",
		"ur":  "گھریلو علاج",
	},
	"safetyConcerns": {
		"en":  "Safety Concerns",
		"hi":  "सुरक्षा संबंधी चिंताएं",
		"as":  "সুৰক্ষা সান্নিধ্য",
		"bn":  "নিরাপত্তা চিন্তা",
		"bo":  "सुरक्षा चिन्ता",
		"gu":  "સુરક્ષા સંબંધી ચિંતાઓ",
		"kn":  "ಸುರಕ್ಷತೆ ಚಿಂತೆಗಳು",
		"ml":  "സുരക്ഷാ ആശങ്കകൾ",
		"mni": "নিরাপত্তা চিন্তা",
		"mr":  "सुरक्षा चिंताएँ",
		"or":  "ସୁରକ୍ଷା ସମସ୍ୟା",
		"pa":  "ਸੁਰੱਖਿਆ ਚਿੰਤਾ",
		"raj": "सुरक्षा चिंताएँ",
		"ta":  "பாதுகாப்பு கவலைகள்",
		"te":  "భద్రతా ఆందోళనలు",
		"ur":  "حفاظتی خدشات",
	},
	"downloadReport": {
		"en":  "Download Report",
		"hi":  "रिपोर्ट डाउनलोड करें",
		"as":  "ৰিপৰ্ট ডাউনলোড কৰক",
		"bn":  "রিপোর্ট ডাউনলোড করুন",
		"bo":  "रिपोर्ट डाउनलोड गर्नुहोस्",
		"gu":  "રિપોર્ટ ડાઉનલોડ કરો",
		"kn":  "ವರದಿ ಡೌನ್‌ಲೋಡ್ ಮಾಡಿ",
		"ml":  "റിപ്പോർട്ട് ഡൗൺലോഡ് ചെയ്യുക",
		"mni": "ৰিপৰ্ট ডাউনলোড কৰক",
		"mr":  "रिपोर्ट डाउनलोड करा",
		"or":  "ରିପୋର୍ଟ ଡାଉନଲୋଡ୍ କରନ୍ତୁ",
		"pa":  "ਰਿਪੋਰਟ ਡਾਊਨਲੋਡ ਕਰੋ",
		"raj": "रिपोर्ट डाउनलोड करें",
		"ta":  "அறிக்கையைப் பதிவிறக்கு",
		"te":  "నివేదిక డౌన్‌లోడ్ చేయండి",
		"ur":  "رپورٹ ڈاؤن لوڈ کریں",
	},
	"provideFeedback": {
		"en":  "Provide Feedback",
		"hi":  "प्रतिक्रिया दें",
		"as":  "মতামত আগবঢ়াও",
		"bn":  "মতামত দিন",
		"bo":  "प्रतिक्रिया दिनुहोस्",
		"gu":  "પ્રતિસાદ આપો",
		"kn":  "ಪ್ರತಿಕ್ರಿಯೆ ನೀಡಿ",
		"ml":  "ഫീഡ്ബാക്ക് നൽകുക",
		"mni": "মতামত দাও",
		"mr":  "प्रतिक्रिया द्या",
		"or":  "ପ୍ରତିକ୍ରିୟା ଦିଅନ୍ତୁ",
		"pa":  "ਪ੍ਰਤਿਕ੍ਰਿਆ ਦਿਓ",
		"raj": "प्रतिक्रिया दें",
		"ta":  "கருத்து தெரிவிக்கவும்",
		"te":  "అభిప్రాయం తెలియజేయండి",
		"ur":  "فیڈبیک فراہم کریں",
	},
	"disclaimer": {
		"en":  "This is an AI-generated pre-diagnosis report and should not be considered as a replacement for professional medical advice. Please consult with a healthcare provider for proper medical diagnosis and treatment. In case of emergency, seek immediate medical attention.",
		"hi":  "यह एक एआई-जनित पूर्व-निदान रिपोर्ट है और इसे पेशेवर चिकित्सा सलाह के विकल्प के रूप में नहीं माना जाना चाहिए। कृपया उचित चिकित्सा निदान और उपचार के लिए स्वास्थ्य सेवा प्रदाता से परामर्श करें। आपातकाल में तत्काल चिकित्सा सहायता लें।",
		"as":  "এইটো এক AI নিৰ্মিত পূৰ্ব-নিদান প্ৰতিবেদন আৰু একে প্ৰফেছনেল চিকিৎসা পৰামৰ্শৰ প্ৰতিস্থাপন হিচাপে গণ্য নহ’ব। সঠিক চিকিৎসা পৰামৰ্শ আৰু চিকিৎসাৰ বাবে অনুগ্ৰহ কৰি এক স্বাস্থ্য সেৱা প্ৰদানকাৰীৰ সৈতে পৰামৰ্শ কৰক। আপতকালীন পৰিস্থিতিত, দ্ৰুত চিকিৎসা সহায় বিচাৰক।",
		"bn":  "এটি একটি AI-জেনারেটেড প্রি-ডায়াগনোসিস রিপোর্ট এবং এটিকে পেশাদার চিকিৎসা পরামর্শের বিকল্প হিসেবে মনে করা উচিত নয়। সঠিক চিকিৎসা পরামর্শ এবং চিকিৎসার জন্য দয়া করে একটি স্বাস্থ্যসেবা প্রদানকারীর সাথে পরামর্শ করুন। জরুরী অবস্থায়, অবিলম্বে চিকিৎসা সহায়তা নিন।",
		"bo":  "यो AI-निर्मित पूर्व-निदान रिपोर्ट हो र यो पेशेवर चिकित्सा परामर्शको विकल्पको रूपमा लिनु हुँदैन। कृपया उपयुक्त चिकित्सा निदान र उपचारको लागि स्वास्थ्य सेवा प्रदायकसँग परामर्श गर्नुहोस्। आपतकालीन अवस्थामा तुरुन्तै चिकित्सा सहायता प्राप्त गर्नुहोस्।",
		"gu":  "આ એઆઇ-જનિત પૂર્વ-નિદાન રિપોર્ટ છે અને તેને વ્યાવસાયિક વૈધ ઉપચારના વિકલ્પ તરીકે માન્ય નહીં ગણવું. કૃપા કરીને યોગ્ય આરોગ્ય નિદાન અને ઉપચાર માટે આરોગ્ય સેવાઓ પ્રદાતાને પરામર્શ કરો. આપત્તિની સ્થિતિમાં, તરત મેડિકલ મદદ માટે જાઓ.",
		"kn":  "ಇದು ಎಐ-ಸೃಜಿತ ಪೂರ್ವ-ನಿರ್ಣಯ ವರದಿ ಆಗಿದ್ದು, ಇದು ವೃತ್ತಿಪರ ವೈದ್ಯಕೀಯ ಸಲಹೆಯ ಪರ್ಯಾಯವನ್ನಾಗಿ ಪರಿಗಣಿಸಬಾರದು. ಸರಿಯಾದ ವೈದ್ಯಕೀಯ ನಿರ್ಣಯ ಮತ್ತು ಚಿಕಿತ್ಸೆಗಾಗಿ ದಯವಿಟ್ಟು ಆರೋಗ್ಯ ಸೇವಾ ಒದಗಿಸುವವರೊಂದಿಗೆ ಸಲಹೆ ಮಾಡಿ. ತುರ್ತು ಪರಿಸ್ಥಿತಿಯಲ್ಲಿ ತಕ್ಷಣ ವೈದ್ಯಕೀಯ ನೆರವು ಪಡೆಯಿರಿ.",
		"ml":  "ഇത് ഒരു എഐ-ഉൽപന്ന മുൻ-നിര്ണയ റിപ്പോർട്ട് ആണ്, ഇത് പ്രൊഫഷണൽ മെഡിക്കൽ ഉപദേശം എന്നിൽ മാറ്റം കാണപ്പെടുന്നില്ല. ദയവായി ശരിയായ മെഡിക്കൽ നിര്ണയത്തിനും ചികിത്സയ്ക്കും ആരോഗ്യ സേവന ദാതാവുമായി സമ്പർക്കം ചെയ്യുക. അടിയന്തര സാഹചര്യത്തിൽ ഉടൻ മെഡിക്കൽ സഹായം തേടുക.",
		"mni": "এটি একটি AI-সৃষ্ট পূর্ব-নির্ণয় প্রতিবেদন এবং এটি পেশাদার চিকিৎসা পরামর্শের বিকল্প হিসেবে গণ্য করা উচিত নয়। সঠিক চিকিৎসা নির্ণয় এবং চিকিৎসার জন্য একটি স্বাস্থ্যসেবা প্রদানকারীর সাথে পরামর্শ করুন। জরুরি অবস্থায়, অবিলম্বে চিকিৎসা সহায়তা নিন।",
		"mr":  "हे एक एआय-निर्मित पूर्व-निदान रिपोर्ट आहे आणि हे व्यावसायिक वैद्यकीय सल्ल्याच्या पर्यायाने विचारले जाऊ नये. कृपया योग्य वैद्यकीय निदान आणि उपचारासाठी आरोग्य सेवा पुरवठादाराशी सल्ला करा. आपत्कालीन स्थितीत त्वरित वैद्यकीय मदतीसाठी संपर्क साधा.",
		"or":  "ଏହା ଏକ AI-ଜନିତ ପୂର୍ବ-ନିଦାନ ରିପୋର୍ଟ ଅଟି ଏହାକୁ ବ୍ୟାବସାୟିକ ଚିକିତ୍ସା ପରାମର୍ଶର ପରିବର୍ତ୍ତନ ବୋଲି ଗଣ୍ୟ କରିବା ଉଚିତ ନୁହେଁ। ଦୟାକରି ଏକ ଶ୍ରେଷ୍ଠ ଚିକିତ୍ସା ପରାମର୍ଶ ଓ ଚିକିତ୍ସା ପାଇଁ ଏକ ହେଲ୍ଥକେୟାର ସେବା ପ୍ରଦାନକାରୀ ସହିତ ଉପଦେଶ ନେବେ। ଆପତ୍କାଳିନ ସ୍ଥିତିରେ ତୁରନ୍ତ ଚିକିତ୍ସା ସାହାଯ୍ୟ ନେବେ।",
		"pa":  "ਇਹ ਇੱਕ AI-ਜਨਰੇਟ ਕੀਤੀ ਪੂਰਵ-ਨਿਰਧਾਰਿਤ ਰਿਪੋਰਟ ਹੈ ਅਤੇ ਇਸਨੂੰ ਪੇਸ਼ੇਵਰ ਮੈਡੀਕਲ ਸਲਾਹ ਦੇ ਵਿਕਲਪ ਵਜੋਂ ਨਹੀਂ ਮੰਨਿਆ ਜਾਣਾ ਚਾਹੀਦਾ। ਕ੍ਰਿਪਾ ਕਰਕੇ ਸਹੀ ਮੈਡੀਕਲ ਨਿਰਧਾਰਣ ਅਤੇ ਇਲਾਜ ਲਈ ਸਿਹਤ ਸੇਵਾ ਪ੍ਰਦਾਤਾ ਨਾਲ ਸਲਾਹ-ਮਸ਼ਵਰਾ ਕਰੋ। ਐਮਰਜੈਂਸੀ ਹਾਲਤ ਵਿੱਚ ਤੁਰੰਤ ਮੈਡੀਕਲ ਸਹਾਇਤਾ ਲਵੋ।",
		"raj": "यह एक एआई-निर्मित पूर्व-निदान रिपोर्ट है और इसे पेशेवर चिकित्सा सलाह के विकल्प के रूप में नहीं माना जाना चाहिए। कृपया उचित चिकित्सा निदान और उपचार के लिए स्वास्थ्य सेवा प्रदाता से परामर्श करें। आपातकाल में तत्काल चिकित्सा सहायता लें।",
		"ta":  "இது ஒரு AI உருவாக்கிய முன்-விண்ணப்ப அறிக்கை ஆகும் மற்றும் இது தொழில்முறை மருத்துவ ஆலோசனையின் மாற்றாக கணக்கிடப்படக்கூடாது. சரியான மருத்துவ தீர்வு மற்றும் சிகிச்சைக்கு, தயவுசெய்து ஒரு ஆரோக்கிய சேவையாளர் மூலம் ஆலோசனைப் பெறவும். அவசர நிலைகளில் உடனடியாக மருத்துவ உதவியை பெற்றுக்கொள்ளவும்.",
		"te":  "ఇది ఒక AI-సృష్టించిన ప్రీ-డయాగ్నోసిస్ రిపోర్ట్ మరియు ఇది వృత్తిపరమైన వైద్య సలహా యొక్క ప్రత్యామ్నాయం గా పరిగణించకూడదు. సరైన వైద్య నిర్ధారణ మరియు చికిత్స కోసం ఒక ఆరోగ్య సేవా ప్రొవైడర్ తో సంప్రదించండి. అత్యవసర పరిస్థితుల్లో వెంటనే వైద్య సహాయం పొందండి.",
		"ur":  "یہ ایک AI-جنریٹڈ پری-ڈائیگنوسس رپورٹ ہے اور اسے پیشہ ورانہ طبی مشورے کے متبادل کے طور پر نہیں سمجھا جانا چاہیے۔ براہ کرم صحیح طبی تشخیص اور علاج کے لیے صحت کی دیکھ بھال فراہم کرنے والے سے مشورہ کریں۔ ایمرجنسی کی حالت میں فوری طور پر طبی مدد حاصل کریں۔",
	},
}
