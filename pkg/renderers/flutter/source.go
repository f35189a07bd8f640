package flutter

// Dart skeletons. Placeholders are replaced in a single pass, so substituted
// text is never rescanned.

const appSource = `void main() => runApp(const MyApp());

class MyApp extends StatelessWidget {
  const MyApp({super.key});

  @override
  Widget build(BuildContext context) {
    return MaterialApp(
      title: __APP_TITLE__,
      theme: ThemeData(
        primarySwatch: Colors.deepPurple,
        visualDensity: VisualDensity.adaptivePlatformDensity,
      ),
      darkTheme: ThemeData.dark().copyWith(
        primaryColor: Colors.deepPurple[200],
        scaffoldBackgroundColor: Colors.grey[900],
        appBarTheme: const AppBarTheme(
          backgroundColor: Colors.deepPurple,
          foregroundColor: Colors.white,
          elevation: 0,
        ),
        elevatedButtonTheme: ElevatedButtonThemeData(
          style: ElevatedButton.styleFrom(
            backgroundColor: Colors.deepPurple,
            foregroundColor: Colors.white,
            padding: const EdgeInsets.symmetric(vertical: 16),
            shape: RoundedRectangleBorder(
              borderRadius: BorderRadius.circular(12),
            ),
          ),
        ),
        cardTheme: CardTheme(
          color: Colors.grey[850],
          elevation: 4,
          shape: RoundedRectangleBorder(
            borderRadius: BorderRadius.circular(12),
          ),
        ),
      ),
      themeMode: ThemeMode.dark,
      home: const __CLASS__(),
    );
  }
}`

const widgetSource = `class __CLASS__ extends StatefulWidget {
  const __CLASS__({super.key});

  @override
  State<__CLASS__> createState() => ___CLASS__State();
}

class ___CLASS__State extends State<__CLASS__> {
  final Map<String, dynamic> _formData = {};
  final Map<String, String?> _validationErrors = {};
  bool _isDarkMode = true;

  // Form configuration
  final Map<String, dynamic> formConfig = __CONFIG__;

  int get _totalFields => (formConfig['sections'] as List).fold<int>(
      0,
      (count, entry) =>
          count + (entry['fields'] != null ? (entry['fields'] as List).length : 1));

  int get _sectionCount =>
      (formConfig['sections'] as List).where((entry) => entry['fields'] != null).length;

  FormTheme getFormTheme() {
    return _isDarkMode ? FormTheme.dark() : FormTheme.light();
  }

  void _handleFormChanged(Map<String, dynamic> data) {
    setState(() {
      _formData.clear();
      _formData.addAll(data);
    });
    print('📝 Form data changed: ${data.keys.length} fields updated');
  }

  void _handleValidationChanged(Map<String, String?> errors) {
    setState(() {
      _validationErrors.clear();
      _validationErrors.addAll(errors);
    });
    final errorCount = errors.values.where((e) => e != null && e.isNotEmpty).length;
    if (errorCount > 0) {
      print('❌ Validation errors: $errorCount fields have errors');
    }
  }

  void _handleFormSubmit(Map<String, dynamic> data) {
    showDialog(
      context: context,
      builder: (context) => AlertDialog(
        backgroundColor: Colors.grey[850],
        title: const Row(
          children: [
            Icon(Icons.check_circle, color: Colors.green),
            SizedBox(width: 8),
            Text('Form Submitted Successfully!', style: TextStyle(color: Colors.white)),
          ],
        ),
        content: SingleChildScrollView(
          child: Column(
            crossAxisAlignment: CrossAxisAlignment.start,
            mainAxisSize: MainAxisSize.min,
            children: [
              Text('✅ Form submitted with ${data.keys.length} fields',
                style: const TextStyle(color: Colors.white)),
              const SizedBox(height: 16),
              const Text('📊 Form Data Summary:',
                style: TextStyle(fontWeight: FontWeight.bold, color: Colors.white)),
              const SizedBox(height: 8),
              ...data.entries.take(10).map((entry) => Padding(
                padding: const EdgeInsets.only(bottom: 4),
                child: RichText(
                  text: TextSpan(
                    style: const TextStyle(color: Colors.white),
                    children: [
                      TextSpan(
                        text: '${entry.key}: ',
                        style: const TextStyle(fontWeight: FontWeight.w600),
                      ),
                      TextSpan(
                        text: entry.value?.toString() ?? 'null',
                        style: const TextStyle(color: Colors.grey),
                      ),
                    ],
                  ),
                ),
              )),
              if (data.keys.length > 10)
                Text('... and ${data.keys.length - 10} more fields',
                  style: const TextStyle(color: Colors.white)),
            ],
          ),
        ),
        actions: [
          TextButton(
            onPressed: () => Navigator.pop(context),
            child: const Text('Close', style: TextStyle(color: Colors.deepPurple)),
          ),
          ElevatedButton(
            onPressed: () {
              Navigator.pop(context);
              print('💾 Complete form data: $data');
            },
            style: ElevatedButton.styleFrom(
              backgroundColor: Colors.deepPurple,
              foregroundColor: Colors.white,
            ),
            child: const Text('View Full Data in Console'),
          ),
        ],
      ),
    );
  }

  @override
  Widget build(BuildContext context) {
    final errorCount = _validationErrors.values.where((e) => e != null && e.isNotEmpty).length;
    final filledFields = _formData.values.where((v) => v != null && v.toString().isNotEmpty).length;

    return Scaffold(
      backgroundColor: Colors.grey[900],
      appBar: AppBar(
        title: const Text(__BAR_TITLE__),
        backgroundColor: Colors.deepPurple,
        foregroundColor: Colors.white,
        elevation: 0,
        actions: [
          IconButton(
            icon: Icon(_isDarkMode ? Icons.light_mode : Icons.dark_mode),
            onPressed: () {
              setState(() {
                _isDarkMode = !_isDarkMode;
              });
            },
            tooltip: 'Toggle theme',
          ),
          IconButton(
            icon: const Icon(Icons.info_outline),
            onPressed: () {
              showDialog(
                context: context,
                builder: (context) => AlertDialog(
                  backgroundColor: Colors.grey[850],
                  title: const Text('📚 Form Information', style: TextStyle(color: Colors.white)),
                  content: SingleChildScrollView(
                    child: Column(
                      crossAxisAlignment: CrossAxisAlignment.start,
                      mainAxisSize: MainAxisSize.min,
                      children: [
                        const Text(__INFO__,
                          style: TextStyle(color: Colors.white)),
                        const SizedBox(height: 12),
                        Text('📊 Total Fields: $_totalFields',
                          style: const TextStyle(color: Colors.grey)),
                        Text('📋 Sections: $_sectionCount',
                          style: const TextStyle(color: Colors.grey)),
                      ],
                    ),
                  ),
                  actions: [
                    TextButton(
                      onPressed: () => Navigator.pop(context),
                      child: const Text('Got it!', style: TextStyle(color: Colors.deepPurple)),
                    ),
                  ],
                ),
              );
            },
            tooltip: 'Show form info',
          ),
        ],
      ),
      body: Column(
        children: [
          // Status bar
          Container(
            width: double.infinity,
            padding: const EdgeInsets.all(16),
            decoration: BoxDecoration(
              color: Colors.grey[850],
              border: Border(
                bottom: BorderSide(color: Colors.grey[700]!, width: 1),
              ),
            ),
            child: Row(
              children: [
                Expanded(
                  child: Text(
                    '📊 Status: $filledFields fields filled',
                    style: const TextStyle(
                      fontWeight: FontWeight.w600,
                      color: Colors.white,
                    ),
                  ),
                ),
                if (errorCount > 0)
                  Container(
                    padding: const EdgeInsets.symmetric(horizontal: 8, vertical: 4),
                    decoration: BoxDecoration(
                      color: Colors.red[900],
                      borderRadius: BorderRadius.circular(12),
                      border: Border.all(color: Colors.red[700]!),
                    ),
                    child: Text(
                      '❌ $errorCount errors',
                      style: const TextStyle(
                        color: Colors.red,
                        fontWeight: FontWeight.w600,
                        fontSize: 12,
                      ),
                    ),
                  ),
                if (errorCount == 0 && filledFields > 0)
                  Container(
                    padding: const EdgeInsets.symmetric(horizontal: 8, vertical: 4),
                    decoration: BoxDecoration(
                      color: Colors.green[900],
                      borderRadius: BorderRadius.circular(12),
                      border: Border.all(color: Colors.green[700]!),
                    ),
                    child: const Text(
                      '✅ All valid',
                      style: TextStyle(
                        color: Colors.green,
                        fontWeight: FontWeight.w600,
                        fontSize: 12,
                      ),
                    ),
                  ),
              ],
            ),
          ),
          // Form
          Expanded(
            child: SingleChildScrollView(
              padding: const EdgeInsets.all(16),
              child: JsonFormBuilder(
                config: formConfig,
                theme: getFormTheme(),
                onChanged: _handleFormChanged,
                onValidation: _handleValidationChanged,
                onSubmit: _handleFormSubmit,
              ),
            ),
          ),
          // Submit button
          Container(
            width: double.infinity,
            padding: const EdgeInsets.all(16),
            decoration: BoxDecoration(
              color: Colors.grey[850],
              border: Border(
                top: BorderSide(color: Colors.grey[700]!, width: 1),
              ),
            ),
            child: ElevatedButton(
              style: ElevatedButton.styleFrom(
                backgroundColor: Colors.deepPurple,
                foregroundColor: Colors.white,
                padding: const EdgeInsets.symmetric(vertical: 16),
                shape: RoundedRectangleBorder(
                  borderRadius: BorderRadius.circular(12),
                ),
                elevation: 0,
              ),
              onPressed: errorCount == 0 && filledFields > 0
                  ? () => _handleFormSubmit(_formData)
                  : null,
              child: Text(
                errorCount > 0
                    ? '❌ Fix $errorCount errors to submit'
                    : filledFields == 0
                        ? '📝 Fill out the form to submit'
                        : '🚀 Submit Form ($filledFields fields)',
                style: const TextStyle(
                  fontSize: 16,
                  fontWeight: FontWeight.bold,
                ),
              ),
            ),
          ),
        ],
      ),
    );
  }
}`
